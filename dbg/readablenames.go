package dbg

import (
	"fmt"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
	"github.com/osuushi/planar/geometry"
)

// This converts points into random readable names, which are much easier to
// tell apart in a list of hull vertices than pairs of long floats. Names are
// memoized for the life of the process and generated lazily, so the memo only
// grows for points that are actually named.

var memo map[geometry.Point]string

func init() {
	memo = make(map[geometry.Point]string)
	// Since the names are generated in order of demand, we make them
	// nondeterministic to remind the user that the same name doesn't refer to
	// the same point between runs.
	petname.NonDeterministicMode()
}

func Name(p geometry.Point) string {
	if r, ok := memo[p]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[p] = r
	return r
}

// The point followed by its readable name.
func Label(p geometry.Point) string {
	return fmt.Sprintf("%v %s", p, Name(p))
}
