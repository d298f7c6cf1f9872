package todo

import "fmt"

// Command is one of Add, Remove, Edit or Toggle.
type Command interface {
	command()
	fmt.Stringer
}

// Add appends a new task with a fresh ID and the default title.
type Add struct{}

// Remove deletes the task with the given ID.
type Remove struct {
	ID string
}

// Edit replaces the title of the task with the given ID.
type Edit struct {
	ID    string
	Title string
}

// Toggle sets the completion state of the task with the given ID.
type Toggle struct {
	ID        string
	Completed bool
}

func (Add) command()    {}
func (Remove) command() {}
func (Edit) command()   {}
func (Toggle) command() {}

func (Add) String() string      { return "add" }
func (c Remove) String() string { return fmt.Sprintf("remove %s", c.ID) }
func (c Edit) String() string   { return fmt.Sprintf("edit %s %q", c.ID, c.Title) }
func (c Toggle) String() string { return fmt.Sprintf("toggle %s %t", c.ID, c.Completed) }
