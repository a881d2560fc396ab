package dbg

import (
	"fmt"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// This converts arbitrary keys (edge and outline indices, mostly) into random
// readable names. "BraveFalcon" is a lot easier to follow through a page of
// diagnostics than "edge 1387". Names are generated lazily, so a Namer costs
// nothing unless something actually asks for a name.

func init() {
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same thing between runs.
	petname.NonDeterministicMode()
}

// A Namer belongs to one graph, so names never leak between triangulations.
type Namer struct {
	mu   sync.Mutex
	memo map[interface{}]string
	// Casers are stateful, so each Namer needs its own
	title cases.Caser
}

func NewNamer() *Namer {
	return &Namer{
		memo:  make(map[interface{}]string),
		title: cases.Title(language.English),
	}
}

func (n *Namer) Name(key interface{}) string {
	if key == nil {
		return "Ø"
	}

	n.mu.Lock()
	defer n.mu.Unlock()
	if r, ok := n.memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", n.title.String(petname.Adjective()), n.title.String(petname.Name()))
	n.memo[key] = r
	return r
}
