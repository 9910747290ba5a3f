package parse

import (
	"fmt"

	"github.com/dekarrin/rezi"
	"github.com/lindqvist/kandrc/internal/kandrc/grammar"
	"github.com/lindqvist/kandrc/internal/util"
)

// MarshalBinary encodes t so a host process can build the table once and
// persist it, rather than re-running Synthesize on every startup.
func (t Table) MarshalBinary() ([]byte, error) {
	var data []byte

	gramData, err := t.Grammar.MarshalBinary()
	if err != nil {
		return nil, fmt.Errorf("encoding grammar: %w", err)
	}
	data = append(data, util.EncInt(len(gramData))...)
	data = append(data, gramData...)

	data = append(data, util.EncStringSlice(t.Symbols.symbols)...)
	data = append(data, util.EncInt(t.Symbols.numTerminals)...)
	data = append(data, util.EncInt(t.Start)...)

	data = append(data, util.EncInt(len(t.cells))...)
	for _, row := range t.cells {
		data = append(data, util.EncInt(len(row))...)
		for _, cell := range row {
			data = append(data, encCell(cell)...)
		}
	}

	return data, nil
}

// UnmarshalBinary decodes data produced by MarshalBinary into t, replacing
// any existing contents.
func (t *Table) UnmarshalBinary(data []byte) error {
	gramLen, n, err := util.DecInt(data)
	if err != nil {
		return fmt.Errorf("decoding grammar length: %w", err)
	}
	data = data[n:]

	if len(data) < gramLen {
		return fmt.Errorf("unexpected end of data decoding grammar")
	}
	var g grammar.Grammar
	if err := g.UnmarshalBinary(data[:gramLen]); err != nil {
		return fmt.Errorf("decoding grammar: %w", err)
	}
	data = data[gramLen:]
	t.Grammar = g

	symbols, n, err := util.DecStringSlice(data)
	if err != nil {
		return fmt.Errorf("decoding symbol table: %w", err)
	}
	data = data[n:]

	numTerminals, n, err := util.DecInt(data)
	if err != nil {
		return fmt.Errorf("decoding terminal count: %w", err)
	}
	data = data[n:]

	index := make(map[string]int, len(symbols))
	for i, sym := range symbols {
		index[sym] = i
	}
	t.Symbols = SymbolTable{symbols: symbols, index: index, numTerminals: numTerminals}

	start, n, err := util.DecInt(data)
	if err != nil {
		return fmt.Errorf("decoding start state: %w", err)
	}
	data = data[n:]
	t.Start = start

	rowCount, n, err := util.DecInt(data)
	if err != nil {
		return fmt.Errorf("decoding row count: %w", err)
	}
	data = data[n:]

	t.cells = make([][]Cell, rowCount)
	for i := 0; i < rowCount; i++ {
		colCount, n, err := util.DecInt(data)
		if err != nil {
			return fmt.Errorf("decoding row %d column count: %w", i, err)
		}
		data = data[n:]

		row := make([]Cell, colCount)
		for j := 0; j < colCount; j++ {
			cell, n, err := decCell(data)
			if err != nil {
				return fmt.Errorf("decoding cell [%d][%d]: %w", i, j, err)
			}
			data = data[n:]
			row[j] = cell
		}
		t.cells[i] = row
	}

	return nil
}

func encCell(c Cell) []byte {
	data := util.EncInt(int(c.Type))
	data = append(data, util.EncInt(c.State)...)
	data = append(data, util.EncString(c.Symbol)...)
	data = append(data, util.EncStringSlice(c.Production)...)
	return data
}

func decCell(data []byte) (Cell, int, error) {
	var c Cell
	var total int

	typ, n, err := util.DecInt(data)
	if err != nil {
		return c, 0, fmt.Errorf("decoding action type: %w", err)
	}
	c.Type = ActionType(typ)
	data, total = data[n:], total+n

	c.State, n, err = util.DecInt(data)
	if err != nil {
		return c, 0, fmt.Errorf("decoding state: %w", err)
	}
	data, total = data[n:], total+n

	c.Symbol, n, err = util.DecString(data)
	if err != nil {
		return c, 0, fmt.Errorf("decoding symbol: %w", err)
	}
	data, total = data[n:], total+n

	prod, n, err := util.DecStringSlice(data)
	if err != nil {
		return c, 0, fmt.Errorf("decoding production: %w", err)
	}
	c.Production = grammar.Production(prod)
	total += n

	return c, total, nil
}

// Encode returns the rezi-framed binary encoding of t, suitable for writing
// to a file or other byte-oriented store and later recovered with Decode.
func Encode(t *Table) []byte {
	return rezi.EncBinary(t)
}

// Decode reverses Encode.
func Decode(data []byte) (*Table, error) {
	t := &Table{}
	n, err := rezi.DecBinary(data, t)
	if err != nil {
		return nil, err
	}
	if n != len(data) {
		return nil, fmt.Errorf("decoded byte count mismatch: consumed %d/%d bytes", n, len(data))
	}
	return t, nil
}
