// Package report prints instances and solver results to the console.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/salesman/tsp"
)

// =============================================================================
// Styles
// =============================================================================

var (
	colorCyan  = lipgloss.Color("36")
	colorGray  = lipgloss.Color("245")
	colorWhite = lipgloss.Color("255")

	styleBanner = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	styleKey    = lipgloss.NewStyle().Foreground(colorGray).Width(20)
	styleValue  = lipgloss.NewStyle().Foreground(colorWhite)
	styleNumber = lipgloss.NewStyle().Foreground(colorCyan)
)

// Section banners, keyed by tour label.
var banners = map[string]string{
	tsp.LabelBruteForceBest:  "MEILLEUR TOUR",
	tsp.LabelBruteForceWorst: "PIRE TOUR",
	tsp.LabelNearestNeighbor: "PLUS-PETIT VOISIN",
	tsp.LabelRandomWalk:      "MARCHE ALÉATOIRE",
	tsp.LabelTwoOptPPV:       "2-OPTIMISATION",
	tsp.LabelTwoOptRW:        "2-OPTIMISATION",
	tsp.LabelGenetic:         "ALGO GENETIQUE",
	tsp.LabelGeneticTwoOpt:   "ALGO GENETIQUE",
}

const bannerWidth = 34

// Banner returns the centred section title for a tour label.
func Banner(method string) string {
	title, ok := banners[method]
	if !ok {
		title = strings.ToUpper(method)
	}
	title = " " + title + " "
	pad := bannerWidth - len([]rune(title))
	if pad < 2 {
		pad = 2
	}
	left := pad / 2

	return strings.Repeat("-", left) + title + strings.Repeat("-", pad-left)
}

// =============================================================================
// Output
// =============================================================================

// Instance prints the instance header.
func Instance(w io.Writer, in *tsp.Instance) {
	keyValue(w, "Nom", in.Name)
	keyValue(w, "Type", in.Type)
	keyValue(w, "Dimension", fmt.Sprint(in.Dimension()))
	keyValue(w, "Type de distance", in.EdgeWeightType)
}

// Tour prints one solver result under its banner.
func Tour(w io.Writer, t tsp.Tour) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, styleBanner.Render(Banner(t.Method)))
	fmt.Fprintf(w, "Tour %s, de taille %d\n", t.Name, len(t.Nodes))
	keyValue(w, "\tMéthode utilisée", t.Method)
	keyValue(w, "\tLongueur calculée", styleNumber.Render(fmt.Sprintf("%f", t.Length)))
	keyValue(w, "\tTemps de calcul", fmt.Sprintf("%3.3f ms", float64(t.Elapsed.Microseconds())/1e3))
	fmt.Fprintln(w, "\tComposée des nœuds:")
	fmt.Fprintf(w, "\t\t%s\n", formatIDs(t.Nodes))
}

// GeneticParams prints the GA configuration block.
func GeneticParams(w io.Writer, opts tsp.Options) {
	with := "faux"
	if opts.GeneticTwoOpt {
		with = "vrai"
	}
	fmt.Fprintln(w, "\tParamètres:")
	keyValue(w, "\t\tPopulation", fmt.Sprint(opts.Population))
	keyValue(w, "\t\tGénérations", fmt.Sprint(opts.Generations))
	keyValue(w, "\t\tTaux de mutations", fmt.Sprintf("%f", opts.MutationRate))
	keyValue(w, "\t\tAvec 2-opt", with)
}

func keyValue(w io.Writer, key, value string) {
	indent := strings.Count(key, "\t")
	fmt.Fprintln(w, strings.Repeat("\t", indent)+styleKey.Render(strings.TrimLeft(key, "\t"))+" "+styleValue.Render(value))
}

func formatIDs(ids []int) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, id := range ids {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, id)
	}
	b.WriteByte(']')

	return b.String()
}
