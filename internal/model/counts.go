package model

type Counts struct {
	Total     int `yaml:"total" json:"total"`
	Completed int `yaml:"completed" json:"completed"`
	Pending   int `yaml:"pending" json:"pending"`
}

func CountTasks(tasks []Task) Counts {
	c := Counts{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			c.Completed++
		}
	}
	c.Pending = c.Total - c.Completed
	return c
}
