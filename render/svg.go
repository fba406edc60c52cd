package render

import (
	"fmt"
	"snakerank/stats"
	"strconv"

	"github.com/beevik/etree"
)

const (
	svgNamespace = "http://www.w3.org/2000/svg"
	svgWidth     = 720
	rowHeight    = 72
	firstRowY    = 40
	footerHeight = 64
	fontFamily   = "Segoe UI, Roboto, Arial"

	leadRadius  = 10
	trailRadius = 7
	// trailing markers every language gets on top of its rating
	baseTrail = 8
)

// Durations are kept in tenths of a second so the attributes stay exact.
const (
	baseDurationTenths  = 70
	durationTenthsPerPt = 3
	trailOffsetTenths   = 2
)

// MotionPath is the cubic curve the markers of row i travel along.
func MotionPath(row int) string {
	y := firstRowY + row*rowHeight
	return fmt.Sprintf("M100,%d C220,%d 420,%d 620,%d", y, y-30, y+30, y)
}

// MarkerCount is the number of markers drawn for rating, the lead included.
func MarkerCount(rating int) int {
	return 1 + baseTrail + rating
}

// AnimationDuration is the time in seconds a marker needs to cross its path.
// Higher ratings move faster.
func AnimationDuration(rating int) float64 {
	return float64(baseDurationTenths-durationTenthsPerPt*rating) / 10
}

func seconds(tenths int) string {
	return strconv.FormatFloat(float64(tenths)/10, 'f', -1, 64) + "s"
}

// SVG renders an animated "snake" per tracked language: a lead marker
// followed by a trail of phase-shifted markers on the same path.
func SVG(ratings stats.Ratings, signature string) (string, error) {
	langs := stats.Languages()
	height := rowHeight*len(langs) + footerHeight

	doc := etree.NewDocument()
	svg := doc.CreateElement("svg")
	svg.CreateAttr("xmlns", svgNamespace)
	svg.CreateAttr("width", strconv.Itoa(svgWidth))
	svg.CreateAttr("height", strconv.Itoa(height))
	svg.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", svgWidth, height))

	background := svg.CreateElement("rect")
	background.CreateAttr("width", "100%")
	background.CreateAttr("height", "100%")
	background.CreateAttr("rx", "12")
	background.CreateAttr("fill", "#0b1220")

	labels := svg.CreateElement("g")
	labels.CreateAttr("font-family", fontFamily)
	labels.CreateAttr("font-size", "14")
	labels.CreateAttr("fill", "#cfe8ff")
	labels.CreateAttr("opacity", "0.95")
	for i, spec := range langs {
		text := labels.CreateElement("text")
		text.CreateAttr("x", "24")
		text.CreateAttr("y", strconv.Itoa(firstRowY+6+i*rowHeight))
		text.SetText(fmt.Sprintf("%s — %d/%d", spec.Name, ratings[spec.Name], stats.MaxRating))
	}

	defs := svg.CreateElement("defs")
	for i := range langs {
		path := defs.CreateElement("path")
		path.CreateAttr("id", fmt.Sprintf("p%d", i+1))
		path.CreateAttr("d", MotionPath(i))
		path.CreateAttr("fill", "none")
		path.CreateAttr("stroke", "none")
	}

	for i, spec := range langs {
		svg.CreateComment(" " + spec.Name + " ")
		addSnake(svg.CreateElement("g"), MotionPath(i), spec.Color, ratings[spec.Name])
	}

	if signature != "" {
		addSignature(svg, signature, height)
	}

	doc.Indent(2)
	out, err := doc.WriteToString()
	if err != nil {
		return "", fmt.Errorf("failed to serialize svg: %w", err)
	}
	return out, nil
}

func addSnake(group *etree.Element, path string, color string, rating int) {
	dur := seconds(baseDurationTenths - durationTenthsPerPt*rating)

	lead := group.CreateElement("circle")
	lead.CreateAttr("r", strconv.Itoa(leadRadius))
	lead.CreateAttr("fill", color)
	addMotion(lead, dur, "", path)

	for i := 0; i < MarkerCount(rating)-1; i++ {
		marker := group.CreateElement("circle")
		marker.CreateAttr("r", strconv.Itoa(trailRadius))
		begin := ""
		if i > 0 {
			begin = "-" + seconds(i*trailOffsetTenths)
		}
		addMotion(marker, dur, begin, path)
	}
}

func addMotion(marker *etree.Element, dur string, begin string, path string) {
	motion := marker.CreateElement("animateMotion")
	motion.CreateAttr("dur", dur)
	motion.CreateAttr("repeatCount", "indefinite")
	if begin != "" {
		motion.CreateAttr("begin", begin)
	}
	motion.CreateAttr("path", path)
}

func addSignature(svg *etree.Element, signature string, height int) {
	group := svg.CreateElement("g")
	group.CreateAttr("transform", fmt.Sprintf("translate(%d,%d)", svgWidth/2, height-30))
	group.CreateAttr("text-anchor", "middle")
	group.CreateAttr("font-family", fontFamily)
	group.CreateAttr("font-size", "18")

	text := group.CreateElement("text")
	text.CreateAttr("fill", "#e6f7ff")
	text.CreateAttr("font-weight", "700")
	text.CreateAttr("opacity", "0.95")
	text.CreateElement("tspan").SetText(signature)

	pulse := text.CreateElement("animate")
	pulse.CreateAttr("attributeName", "opacity")
	pulse.CreateAttr("values", "0.2;1;0.2")
	pulse.CreateAttr("dur", "4s")
	pulse.CreateAttr("repeatCount", "indefinite")

	drift := text.CreateElement("animateTransform")
	drift.CreateAttr("attributeName", "transform")
	drift.CreateAttr("type", "translate")
	drift.CreateAttr("values", "0,0;0,-6;0,0")
	drift.CreateAttr("dur", "4s")
	drift.CreateAttr("repeatCount", "indefinite")
}
