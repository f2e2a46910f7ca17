package export

import (
	"regexp"
	"strings"
)

const maxFilenamePart = 40

var filenameStrip = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// safeFilePart sanitizes one name component: whitespace becomes underscores,
// anything outside [A-Za-z0-9_-] is dropped, the part is capped, and an
// empty result falls back to "X".
func safeFilePart(s string) string {
	part := strings.Join(strings.Fields(s), "_")
	part = filenameStrip.ReplaceAllString(part, "")
	if len(part) > maxFilenamePart {
		part = part[:maxFilenamePart]
	}
	if part == "" {
		part = "X"
	}
	return part
}

// Filename builds the download name "CV_<First>_<Last>.<ext>". Missing name
// components default to Prenom/Nom placeholders.
func Filename(firstName, lastName, ext string) string {
	if strings.TrimSpace(firstName) == "" {
		firstName = "Prenom"
	}
	if strings.TrimSpace(lastName) == "" {
		lastName = "Nom"
	}
	name := "CV_" + safeFilePart(firstName) + "_" + safeFilePart(lastName)
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		return name
	}
	return name + "." + ext
}
