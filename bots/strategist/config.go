package strategist

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// rangesFile is the HCL schema for overriding the pre-flop range tables:
//
//	position "late" {
//	  rfi       = ["22+", "A2s+"]
//	  three_bet = ["88+"]
//	  call      = ["JTs"]
//	}
type rangesFile struct {
	Positions []positionBlock `hcl:"position,block"`
}

type positionBlock struct {
	Name     string   `hcl:"name,label"`
	RFI      []string `hcl:"rfi,optional"`
	ThreeBet []string `hcl:"three_bet,optional"`
	Call     []string `hcl:"call,optional"`
}

// LoadRanges loads range tables from an HCL file. A missing file yields the
// built-in defaults; positions absent from the file keep their defaults.
func LoadRanges(filename string) (map[Position]RangeTable, error) {
	ranges := DefaultRanges()

	if filename == "" {
		return ranges, nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return ranges, nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parse ranges file: %s", diags.Error())
	}

	var cfg rangesFile
	if diags := gohcl.DecodeBody(file.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("decode ranges file: %s", diags.Error())
	}

	for _, block := range cfg.Positions {
		pos, err := positionFromName(block.Name)
		if err != nil {
			return nil, err
		}
		table := ranges[pos]
		if block.RFI != nil {
			table.RFI = block.RFI
		}
		if block.ThreeBet != nil {
			table.ThreeBet = block.ThreeBet
		}
		if block.Call != nil {
			table.Call = block.Call
		}
		ranges[pos] = table
	}

	return ranges, nil
}

func positionFromName(name string) (Position, error) {
	switch name {
	case "early":
		return Early, nil
	case "middle":
		return Middle, nil
	case "late":
		return Late, nil
	case "blinds":
		return Blinds, nil
	default:
		return 0, fmt.Errorf("unknown position %q", name)
	}
}
