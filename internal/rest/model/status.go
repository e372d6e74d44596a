package model

import (
	"github.com/sergeii/enigma/pkg/enigma"
)

type Status struct {
	BuildTime    string `json:"BuildTime"`
	BuildCommit  string `json:"BuildCommit"`
	BuildVersion string `json:"BuildVersion"`
}

type Rotor struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Wiring  string `json:"wiring"`
	Notches []int  `json:"notches"`
}

type Catalog struct {
	Rotors     []Rotor  `json:"rotors"`
	Reflectors []string `json:"reflectors"`
}

// NewCatalog lists the available rotors with their 0-based index and the known reflectors.
// The unused notch slot of single notch rotors is left out.
func NewCatalog() Catalog {
	rotors := make([]Rotor, 0, len(enigma.Catalog))
	for idx, entry := range enigma.Catalog {
		notches := make([]int, 0, 2)
		for _, n := range entry.Notches {
			if n != enigma.NoNotch {
				notches = append(notches, n)
			}
		}
		rotors = append(rotors, Rotor{
			Index:   idx,
			Name:    entry.Name,
			Wiring:  entry.Encoding,
			Notches: notches,
		})
	}
	return Catalog{
		Rotors:     rotors,
		Reflectors: enigma.ReflectorIDs,
	}
}
