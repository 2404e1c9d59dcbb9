package vtscreen

import (
	"image/color"
	"strings"

	"golang.org/x/text/cases"
)

// x11Names covers the common subset of the X11 rgb.txt color database that
// terminals actually query via OSC 10-19/4 set requests. Extend as needed;
// unknown names are an ErrInvalidFormat, not a panic.
var x11Names = map[string]color.RGBA{
	"black":                {0, 0, 0, 255},
	"white":                {255, 255, 255, 255},
	"red":                  {255, 0, 0, 255},
	"green":                {0, 255, 0, 255},
	"blue":                 {0, 0, 255, 255},
	"yellow":               {255, 255, 0, 255},
	"cyan":                 {0, 255, 255, 255},
	"magenta":              {255, 0, 255, 255},
	"gray":                 {190, 190, 190, 255},
	"grey":                 {190, 190, 190, 255},
	"darkgray":             {169, 169, 169, 255},
	"darkgrey":             {169, 169, 169, 255},
	"lightgray":            {211, 211, 211, 255},
	"lightgrey":            {211, 211, 211, 255},
	"orange":               {255, 165, 0, 255},
	"purple":               {160, 32, 240, 255},
	"brown":                {165, 42, 42, 255},
	"pink":                 {255, 192, 203, 255},
	"navy":                 {0, 0, 128, 255},
	"navyblue":             {0, 0, 128, 255},
	"teal":                 {0, 128, 128, 255},
	"olive":                {128, 128, 0, 255},
	"maroon":               {176, 48, 96, 255},
	"silver":               {192, 192, 192, 255},
	"gold":                 {255, 215, 0, 255},
	"indigo":               {75, 0, 130, 255},
	"violet":               {238, 130, 238, 255},
	"turquoise":            {64, 224, 208, 255},
	"salmon":               {250, 128, 114, 255},
	"khaki":                {240, 230, 140, 255},
	"coral":                {255, 127, 80, 255},
	"chocolate":            {210, 105, 30, 255},
	"crimson":              {220, 20, 60, 255},
	"orchid":               {218, 112, 214, 255},
	"plum":                 {221, 160, 221, 255},
	"skyblue":              {135, 206, 235, 255},
	"steelblue":            {70, 130, 180, 255},
	"royalblue":            {65, 105, 225, 255},
	"forestgreen":          {34, 139, 34, 255},
	"seagreen":             {46, 139, 87, 255},
	"lightgreen":           {144, 238, 144, 255},
	"darkgreen":            {0, 100, 0, 255},
	"firebrick":            {178, 34, 34, 255},
	"tomato":               {255, 99, 71, 255},
	"wheat":                {245, 222, 179, 255},
	"beige":                {245, 245, 220, 255},
	"ivory":                {255, 255, 240, 255},
	"lavender":             {230, 230, 250, 255},
	"tan":                  {210, 180, 140, 255},
	"sienna":               {160, 82, 45, 255},
	"snow":                 {255, 250, 250, 255},
	"honeydew":             {240, 255, 240, 255},
	"azure":                {240, 255, 255, 255},
	"linen":                {250, 240, 230, 255},
	"cornsilk":             {255, 248, 220, 255},
	"lemonchiffon":         {255, 250, 205, 255},
	"antiquewhite":         {250, 235, 215, 255},
	"papayawhip":           {255, 239, 213, 255},
	"mistyrose":            {255, 228, 225, 255},
	"slategray":            {112, 128, 144, 255},
	"slategrey":            {112, 128, 144, 255},
	"dimgray":              {105, 105, 105, 255},
	"dimgrey":              {105, 105, 105, 255},
	"cadetblue":            {95, 158, 160, 255},
	"darkslategray":        {47, 79, 79, 255},
	"darkslategrey":        {47, 79, 79, 255},
	"mediumblue":           {0, 0, 205, 255},
	"mediumseagreen":       {60, 179, 113, 255},
	"darkorange":           {255, 140, 0, 255},
	"darkred":              {139, 0, 0, 255},
	"darkviolet":           {148, 0, 211, 255},
	"deeppink":             {255, 20, 147, 255},
	"hotpink":              {255, 105, 180, 255},
	"chartreuse":           {127, 255, 0, 255},
	"aquamarine":           {127, 255, 212, 255},
}

// x11Fold is a stable caser used to normalize lookups instead of the
// simpler strings.EqualFold loop a stdlib-only implementation would use
// (spec.md §4.3 requires case-insensitive, whitespace-trimmed matching).
var x11Fold = cases.Fold()

// x11Folded maps the fold-normalized name to its color, built once so
// lookups are O(1) instead of re-folding every table entry per query.
var x11Folded = func() map[string]color.RGBA {
	m := make(map[string]color.RGBA, len(x11Names))
	for k, v := range x11Names {
		m[x11Fold.String(k)] = v
	}
	return m
}()

func x11Key(name string) string {
	name = strings.Join(strings.Fields(name), "")
	return x11Fold.String(name)
}

func lookupX11Color(name string) (color.RGBA, error) {
	if v, ok := x11Folded[x11Key(name)]; ok {
		return v, nil
	}
	return color.RGBA{}, ErrInvalidFormat
}
