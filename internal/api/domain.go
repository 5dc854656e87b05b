package api

import (
	"github.com/JaimeStill/gym-rutinas/internal/ejercicios"
	"github.com/JaimeStill/gym-rutinas/internal/rutinas"
)

// Domain holds all domain systems that comprise the API.
type Domain struct {
	Rutinas    rutinas.System
	Ejercicios ejercicios.System
}

// NewDomain creates all domain systems from the API runtime.
func NewDomain(runtime *Runtime) *Domain {
	db := runtime.Database.Connection()

	return &Domain{
		Rutinas:    rutinas.New(db, runtime.Logger),
		Ejercicios: ejercicios.New(db, runtime.Logger),
	}
}
