package crystal

// speciesEntry records the lattice and cubic lattice constant (Å) of one
// elemental crystal.
type speciesEntry struct {
	lattice Lattice
	a       float64
}

// speciesTable lists the cubic elemental crystals the toolkit knows about.
// Lattice constants are the conventional room-temperature values in Å.
var speciesTable = map[string]speciesEntry{
	// FCC metals
	"Cu": {FCC, 3.615},
	"Al": {FCC, 4.050},
	"Ni": {FCC, 3.524},
	"Ag": {FCC, 4.085},
	"Au": {FCC, 4.078},
	"Pd": {FCC, 3.891},
	"Pt": {FCC, 3.924},
	"Pb": {FCC, 4.950},
	// BCC metals
	"Fe": {BCC, 2.866},
	"W":  {BCC, 3.165},
	"Mo": {BCC, 3.147},
	"V":  {BCC, 3.030},
	"Nb": {BCC, 3.300},
	"Cr": {BCC, 2.880},
	"Ta": {BCC, 3.301},
}

// Known reports whether the species label is in the registry.
func Known(species string) bool {
	_, ok := speciesTable[species]
	return ok
}

// LatticeOf returns the registered lattice of the species.
// Returns ErrUnknownSpecies for labels outside the registry.
func LatticeOf(species string) (Lattice, error) {
	e, ok := speciesTable[species]
	if !ok {
		return 0, ErrUnknownSpecies
	}
	return e.lattice, nil
}
