package forms

import "fmt"

const (
	msgRequired = "This field is required."
	msgInteger  = "Enter a whole number."
)

func msgMaxLength(limit, got int) string {
	return fmt.Sprintf("Ensure this value has at most %d characters (it has %d).", limit, got)
}

func msgMinValue(limit int64) string {
	return fmt.Sprintf("Ensure this value is greater than or equal to %d.", limit)
}

func msgMaxValue(limit uint64) string {
	return fmt.Sprintf("Ensure this value is less than or equal to %d.", limit)
}

func msgInvalidChoice(value string) string {
	return fmt.Sprintf("Select a valid choice. %s is not one of the available choices.", value)
}

// Errors maps a field name to the first validation message raised for it.
type Errors map[string]string

func (e Errors) Add(field, msg string) {
	if _, ok := e[field]; !ok {
		e[field] = msg
	}
}

func (e Errors) Get(field string) string {
	return e[field]
}

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

func (e Errors) Any() bool {
	return len(e) > 0
}
