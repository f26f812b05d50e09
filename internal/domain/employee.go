package domain

import "time"

// Employee is a payroll row used by the birthday listing. Sourced from
// the external system, never written by this service.
type Employee struct {
	Name      string    `db:"nome"`
	BirthDate time.Time `db:"dt_nasc"`
	Branch    string    `db:"filial"`
}

// Ramal is an internal telephone extension entry.
type Ramal struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	Extension string `db:"ramal_number"`
}
