// Package slots implements a count-match slot machine: a grid of symbols
// drops into place row by row, three or more identical symbols anywhere on
// the grid score points, and matched symbols switch to a "connected" look.
package slots

import (
	"errors"
	"fmt"
	"math/rand"
	"path"
	"strings"

	"github.com/vovakirdan/tui-slots/internal/core"
)

// SymbolID names a symbol kind.
type SymbolID string

// Symbol describes one catalog entry.
type Symbol struct {
	ID    SymbolID
	Asset string     // Visual resource reference
	Color core.Color // Terminal color
}

// ErrUnknownSymbol is returned for ids outside the catalog.
var ErrUnknownSymbol = errors.New("unknown symbol")

// UnknownSymbolError reports which id missed the catalog.
type UnknownSymbolError struct {
	ID SymbolID
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("slots: unknown symbol %q", string(e.ID))
}

func (e *UnknownSymbolError) Unwrap() error {
	return ErrUnknownSymbol
}

// connectSuffix is inserted before the asset extension for the matched look.
const connectSuffix = "_connect"

// defaultSymbols is the fixed catalog, in draw order.
var defaultSymbols = []Symbol{
	{ID: "9", Asset: "assets/9.png", Color: core.ColorBlue},
	{ID: "10", Asset: "assets/10.png", Color: core.ColorBlue},
	{ID: "A", Asset: "assets/A.png", Color: core.ColorBrightCyan},
	{ID: "H1", Asset: "assets/H1.png", Color: core.ColorBrightRed},
	{ID: "H2", Asset: "assets/H2.png", Color: core.ColorRed},
	{ID: "H3", Asset: "assets/H3.png", Color: core.ColorBrightMagenta},
	{ID: "H4", Asset: "assets/H4.png", Color: core.ColorMagenta},
	{ID: "H5", Asset: "assets/H5.png", Color: core.ColorOrange},
	{ID: "H6", Asset: "assets/H6.png", Color: core.ColorYellow},
	{ID: "J", Asset: "assets/J.png", Color: core.ColorCyan},
	{ID: "K", Asset: "assets/K.png", Color: core.ColorBrightBlue},
	{ID: "M1", Asset: "assets/M1.png", Color: core.ColorGreen},
	{ID: "M2", Asset: "assets/M2.png", Color: core.ColorBrightGreen},
	{ID: "M3", Asset: "assets/M3.png", Color: core.ColorBrightYellow},
	{ID: "M4", Asset: "assets/M4.png", Color: core.ColorWhite},
	{ID: "M5", Asset: "assets/M5.png", Color: core.ColorBrightWhite},
	{ID: "M6", Asset: "assets/M6.png", Color: core.ColorGray},
	{ID: "Q", Asset: "assets/Q.png", Color: core.ColorCyan},
}

// Catalog maps symbol ids to their visuals and supplies random draws.
// It is immutable after construction.
type Catalog struct {
	symbols []Symbol
	index   map[SymbolID]int
}

// NewCatalog returns the standard 18-symbol catalog.
func NewCatalog() *Catalog {
	return newCatalog(defaultSymbols)
}

// ErrEmptyCatalog is returned when a catalog would have nothing to draw.
var ErrEmptyCatalog = errors.New("catalog has no symbols")

// NewCatalogFrom builds a catalog from custom symbols, for use with WithCatalog.
func NewCatalogFrom(symbols ...Symbol) (*Catalog, error) {
	if len(symbols) == 0 {
		return nil, ErrEmptyCatalog
	}
	return newCatalog(symbols), nil
}

func newCatalog(symbols []Symbol) *Catalog {
	c := &Catalog{
		symbols: append([]Symbol(nil), symbols...),
		index:   make(map[SymbolID]int, len(symbols)),
	}
	for i, s := range c.symbols {
		c.index[s.ID] = i
	}
	return c
}

// Len returns the number of symbols.
func (c *Catalog) Len() int {
	return len(c.symbols)
}

// Symbols returns the catalog entries in draw order.
func (c *Catalog) Symbols() []Symbol {
	return append([]Symbol(nil), c.symbols...)
}

// RandomSymbol draws an id uniformly from the catalog.
func (c *Catalog) RandomSymbol(rng *rand.Rand) SymbolID {
	return c.symbols[rng.Intn(len(c.symbols))].ID
}

// Lookup returns the catalog entry for id.
func (c *Catalog) Lookup(id SymbolID) (Symbol, error) {
	i, ok := c.index[id]
	if !ok {
		return Symbol{}, &UnknownSymbolError{ID: id}
	}
	return c.symbols[i], nil
}

// AssetFor returns the base visual reference of id.
func (c *Catalog) AssetFor(id SymbolID) (string, error) {
	s, err := c.Lookup(id)
	if err != nil {
		return "", err
	}
	return s.Asset, nil
}

// ConnectedAssetFor returns the matched visual reference of id.
func (c *Catalog) ConnectedAssetFor(id SymbolID) (string, error) {
	asset, err := c.AssetFor(id)
	if err != nil {
		return "", err
	}
	return ConnectedAsset(asset), nil
}

// ConnectedAsset derives the matched variant of a resource reference:
// "assets/K.png" becomes "assets/K_connect.png".
func ConnectedAsset(ref string) string {
	ext := path.Ext(ref)
	return strings.TrimSuffix(ref, ext) + connectSuffix + ext
}
