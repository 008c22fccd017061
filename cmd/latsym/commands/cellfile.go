package commands

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/latsym/cell"
	"github.com/katalvlaran/latsym/geom"
)

// ErrBadCellFile wraps every cell-file shape problem.
var ErrBadCellFile = errors.New("latsym: malformed cell file")

// cellFile is the YAML schema accepted on disk:
//
//	lattice:            # three basis-vector rows, Cartesian
//	  - [4.05, 0, 0]
//	  - [0, 4.05, 0]
//	  - [0, 0, 4.05]
//	positions:          # fractional coordinates, one row per atom
//	  - [0, 0, 0]
//	species: [1]        # one integer label per atom
//	magmoms: [0.0]      # optional collinear moments, one per atom
type cellFile struct {
	Lattice   [][]float64 `yaml:"lattice"`
	Positions [][]float64 `yaml:"positions"`
	Species   []int       `yaml:"species"`
	Magmoms   []float64   `yaml:"magmoms"`
}

func loadCell(path string) (*cell.Cell, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f cellFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadCellFile, err)
	}
	if len(f.Lattice) != 3 {
		return nil, fmt.Errorf("%w: lattice needs exactly 3 rows", ErrBadCellFile)
	}
	if len(f.Positions) != len(f.Species) {
		return nil, fmt.Errorf("%w: positions and species disagree in length", ErrBadCellFile)
	}

	var lat geom.Mat3
	for i, row := range f.Lattice {
		if len(row) != 3 {
			return nil, fmt.Errorf("%w: lattice row %d needs 3 components", ErrBadCellFile, i)
		}
		copy(lat[i][:], row)
	}

	pos := make([]geom.Vec3, len(f.Positions))
	for i, row := range f.Positions {
		if len(row) != 3 {
			return nil, fmt.Errorf("%w: position row %d needs 3 components", ErrBadCellFile, i)
		}
		copy(pos[i][:], row)
	}

	var opts []cell.Option
	if len(f.Magmoms) > 0 {
		if len(f.Magmoms) != len(pos) {
			return nil, fmt.Errorf("%w: magmoms and positions disagree in length", ErrBadCellFile)
		}
		ms := make([]cell.Magmom, len(f.Magmoms))
		for i, m := range f.Magmoms {
			ms[i] = cell.Collinear(m)
		}
		opts = append(opts, cell.WithMagmoms(ms))
	}

	return cell.New(lat, pos, f.Species, opts...)
}
