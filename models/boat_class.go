package models

import (
	"errors"
	"fmt"
)

// ErrUnknownBoatClass is returned when a roster references a boat class code
// that is not in the registry. Callers should treat this as a data problem,
// not a transient fault.
var ErrUnknownBoatClass = errors.New("unknown boat class")

// BoatClass describes a rowing shell configuration: how many rowing seats it
// has and whether it carries a coxswain.
type BoatClass struct {
	Code       string `json:"code"`       // e.g. "8+", "4x", "1x"
	Name       string `json:"name"`       // human-readable, e.g. "Coxed Eight"
	RowerSeats int    `json:"rowerSeats"` // rowing seats, excluding the coxswain
	Coxed      bool   `json:"coxed"`
}

// TotalSeats returns the number of crew members the class carries,
// including the coxswain if present.
func (b BoatClass) TotalSeats() int {
	if b.Coxed {
		return b.RowerSeats + 1
	}
	return b.RowerSeats
}

// boatClasses is the fixed registry of supported boat classes.
// Add new classes by adding rows here; the seat position tables in the
// compile package key off the same codes.
var boatClasses = map[string]BoatClass{
	"1x": {Code: "1x", Name: "Single Scull", RowerSeats: 1, Coxed: false},
	"2x": {Code: "2x", Name: "Double Scull", RowerSeats: 2, Coxed: false},
	"2-": {Code: "2-", Name: "Coxless Pair", RowerSeats: 2, Coxed: false},
	"2+": {Code: "2+", Name: "Coxed Pair", RowerSeats: 2, Coxed: true},
	"4x": {Code: "4x", Name: "Quad Scull", RowerSeats: 4, Coxed: false},
	"4-": {Code: "4-", Name: "Coxless Four", RowerSeats: 4, Coxed: false},
	"4+": {Code: "4+", Name: "Coxed Four", RowerSeats: 4, Coxed: true},
	"8+": {Code: "8+", Name: "Coxed Eight", RowerSeats: 8, Coxed: true},
}

// LookupBoatClass returns the boat class for a code, or ErrUnknownBoatClass
// if the code is not registered.
func LookupBoatClass(code string) (BoatClass, error) {
	if class, exists := boatClasses[code]; exists {
		return class, nil
	}
	return BoatClass{}, fmt.Errorf("%w: %q", ErrUnknownBoatClass, code)
}

// BoatClassCodes returns all registered codes. Order is not guaranteed.
func BoatClassCodes() []string {
	codes := make([]string, 0, len(boatClasses))
	for code := range boatClasses {
		codes = append(codes, code)
	}
	return codes
}
