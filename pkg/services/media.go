package services

import (
	"fmt"
	"os"
	"path"
	"strings"
)

const sanityImageCDN = "https://cdn.sanity.io/images"

// ImageURL converts an asset reference such as "image-Tb9Ew8CXIwaY6R1kjMvI0uRR-2000x3000-jpg"
// into its CDN URL. Malformed references give "".
func ImageURL(ref, projectID, dataset string) string {
	if !strings.HasPrefix(ref, "image-") || projectID == "" || dataset == "" {
		return ""
	}
	rest := strings.TrimPrefix(ref, "image-")
	dash := strings.LastIndex(rest, "-")
	if dash <= 0 || dash == len(rest)-1 {
		return ""
	}
	idAndDims, ext := rest[:dash], rest[dash+1:]
	if !strings.Contains(idAndDims, "-") {
		return ""
	}
	return fmt.Sprintf("%s/%s/%s/%s.%s", sanityImageCDN, projectID, dataset, idAndDims, ext)
}

// ResolveLocalImage swaps a png/jpg reference under urlPrefix for its .webp sibling
// when the optimized file exists in dir.
func ResolveLocalImage(dir, urlPrefix, ref string) string {
	if ref == "" || dir == "" || !strings.HasPrefix(ref, urlPrefix) {
		return ref
	}
	ext := strings.ToLower(path.Ext(ref))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
		return ref
	}
	name := strings.TrimPrefix(ref, urlPrefix)
	webp := strings.TrimSuffix(name, path.Ext(name)) + ".webp"

	full := SafeJoin(dir, "", webp)
	if full == "" {
		return ref
	}
	if _, err := os.Stat(full); err != nil {
		return ref
	}
	return urlPrefix + webp
}
