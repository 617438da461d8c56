// Package registry is the fixed catalog of games in the collection.
// The set is closed: every kind is known at compile time and the menu
// order is the declaration order below.
package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/vovakirdan/terminal-games/internal/i18n"
)

// Kind tags one of the games.
type Kind int

const (
	GoldMiner Kind = iota
	Tetris
	Snake
	T2048
	Minesweeper
	kindCount
)

// GameInfo contains metadata about a game.
type GameInfo struct {
	Kind Kind
	// ID is the command-line identifier, e.g. "goldminer".
	ID string
	// Namespace is the key prefix of the game's text in the locale tables.
	Namespace string
	Aliases   []string
}

var catalog = [kindCount]GameInfo{
	{Kind: GoldMiner, ID: "goldminer", Namespace: "goldminer", Aliases: []string{"gold", "miner"}},
	{Kind: Tetris, ID: "tetris", Namespace: "tetris"},
	{Kind: Snake, ID: "snake", Namespace: "snake"},
	{Kind: T2048, ID: "2048", Namespace: "t2048", Aliases: []string{"t2048"}},
	{Kind: Minesweeper, ID: "minesweeper", Namespace: "minesweeper", Aliases: []string{"mines"}},
}

// Count is the number of games.
const Count = int(kindCount)

// List returns every game in menu order.
func List() []GameInfo {
	out := make([]GameInfo, len(catalog))
	copy(out, catalog[:])
	return out
}

// Info returns the metadata for k.
func Info(k Kind) GameInfo {
	return catalog[k]
}

// String returns the game ID.
func (k Kind) String() string {
	if k < 0 || k >= kindCount {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return catalog[k].ID
}

// Title returns the localized display title of k.
func (k Kind) Title(lang i18n.Language) string {
	return i18n.New(catalog[k].Namespace, lang).T("title")
}

// Lookup finds a game by ID or alias, ignoring case.
func Lookup(id string) (Kind, error) {
	id = strings.ToLower(strings.TrimSpace(id))
	for _, info := range catalog {
		if info.ID == id {
			return info.Kind, nil
		}
		for _, a := range info.Aliases {
			if a == id {
				return info.Kind, nil
			}
		}
	}
	if s := Suggest(id); len(s) > 0 {
		return 0, fmt.Errorf("registry: unknown game %q (did you mean %s?)", id, strings.Join(s, ", "))
	}
	return 0, fmt.Errorf("registry: unknown game %q", id)
}

func suggestLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// Suggest returns the IDs closest to a mistyped name, best first.
func Suggest(id string) []string {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "" {
		return nil
	}

	type scored struct {
		id   string
		dist int
	}
	var results []scored
	for _, info := range catalog {
		best := -1
		for _, name := range append([]string{info.ID}, info.Aliases...) {
			d := levenshtein.ComputeDistance(id, name)
			if strings.HasPrefix(name, id) && len(id) >= 2 {
				d = 0
			}
			if d > suggestLimit(len(name)) {
				continue
			}
			if best < 0 || d < best {
				best = d
			}
		}
		if best >= 0 {
			results = append(results, scored{info.ID, best})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].dist < results[j].dist
	})
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.id
	}
	return out
}
