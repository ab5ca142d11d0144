// Command export writes the test cases and the edges built from them to
// JSON, for cross-checking other implementations.
// Run from the module root directory.
package main

import (
	"encoding/json"
	"maps"
	"os"
	"slices"

	"seehuhn.de/go/edges"
	"seehuhn.de/go/edges/testcases"
)

func main() {
	var out struct {
		BandHeight int            `json:"band_height"`
		TestCases  []jsonTestCase `json:"testcases"`
	}
	out.BandHeight = edges.DefaultBandHeight

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			out.TestCases = append(out.TestCases, toJSON(category, tc))
		}
	}

	if err := os.MkdirAll("testdata", 0755); err != nil {
		panic(err)
	}
	f, err := os.Create("testdata/testcases.json")
	if err != nil {
		panic(err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		panic(err)
	}
}

type jsonTestCase struct {
	Name      string        `json:"name"`
	Width     int           `json:"width"`
	Height    int           `json:"height"`
	Clip      [4]float64    `json:"clip"`
	FillRule  string        `json:"fill_rule"`
	CTM       []float64     `json:"ctm,omitempty"`
	Tolerance float64       `json:"tolerance"`
	Path      []jsonCommand `json:"path"`
	Edges     []jsonEdge    `json:"edges"`
	BBox      []int32       `json:"bbox,omitempty"`
}

type jsonCommand struct {
	Cmd string     `json:"cmd"`
	Pt  [2]float64 `json:"pt"`
}

type jsonEdge struct {
	Band int        `json:"band"`
	Dir  string     `json:"dir"`
	Pts  [][2]int32 `json:"pts"`
}

func toJSON(category string, tc testcases.TestCase) jsonTestCase {
	clip := tc.ClipRect()
	jtc := jsonTestCase{
		Name:      category + "_" + tc.Name,
		Width:     tc.Width,
		Height:    tc.Height,
		Clip:      [4]float64{clip.LLx, clip.LLy, clip.URx, clip.URy},
		FillRule:  tc.Rule.String(),
		Tolerance: tc.Tol(),
		Path:      pathToJSON(tc.Path),
	}
	if tc.Transform() != nil {
		jtc.CTM = tc.CTM[:]
	}

	store := tc.Build(edges.DefaultBandHeight)
	for band, e := range store.All() {
		je := jsonEdge{Band: band, Dir: e.Dir.String()}
		for _, p := range e.Points {
			je.Pts = append(je.Pts, [2]int32{p.X, p.Y})
		}
		jtc.Edges = append(jtc.Edges, je)
	}
	if b := store.BBox; !b.Empty() {
		jtc.BBox = []int32{b.XMin, b.YMin, b.XMax, b.YMax}
	}
	return jtc
}

func pathToJSON(p *edges.Path) []jsonCommand {
	cmds := make([]jsonCommand, len(p.Cmds))
	for i, cmd := range p.Cmds {
		cmds[i] = jsonCommand{
			Cmd: cmd.String(),
			Pt:  [2]float64{p.Points[i].X, p.Points[i].Y},
		}
	}
	return cmds
}
