package web

import (
	"fmt"
	"strings"
)

// segment is one slash-separated piece of a route pattern. A segment either
// matches a literal or captures exactly one non-empty path segment.
type segment struct {
	literal string
	capture string
}

// route is a compiled entry of the dispatch table.
type route struct {
	method   string
	pattern  string
	segments []segment
	handler  HandlerFunc
}

// newRoute compiles a pattern like "/v1/customers/{id}/activity". Captures
// must be whole segments with unique names. Invalid patterns panic, the same
// way http.ServeMux treats them at registration time.
func newRoute(method string, pattern string, handler HandlerFunc) route {
	parts := splitPath(pattern)

	segments := make([]segment, len(parts))
	seen := make(map[string]struct{})

	for i, part := range parts {
		switch {
		case part == "":
			panic(fmt.Sprintf("web: empty segment in pattern %q", pattern))

		case strings.HasPrefix(part, "{") && strings.HasSuffix(part, "}"):
			name := part[1 : len(part)-1]
			if name == "" || strings.ContainsAny(name, "{}") {
				panic(fmt.Sprintf("web: bad capture %q in pattern %q", part, pattern))
			}
			if _, exists := seen[name]; exists {
				panic(fmt.Sprintf("web: duplicate capture %q in pattern %q", name, pattern))
			}
			seen[name] = struct{}{}
			segments[i] = segment{capture: name}

		case strings.ContainsAny(part, "{}"):
			panic(fmt.Sprintf("web: partial capture %q in pattern %q", part, pattern))

		default:
			segments[i] = segment{literal: part}
		}
	}

	return route{
		method:   method,
		pattern:  pattern,
		segments: segments,
		handler:  handler,
	}
}

// match reports whether the method and path select this route and returns
// the captured values keyed by capture name.
func (rt route) match(method string, path string) (map[string]string, bool) {
	if rt.method != method {
		return nil, false
	}

	parts := splitPath(path)
	if len(parts) != len(rt.segments) {
		return nil, false
	}

	var values map[string]string
	for i, seg := range rt.segments {
		if seg.capture == "" {
			if parts[i] != seg.literal {
				return nil, false
			}
			continue
		}

		if parts[i] == "" {
			return nil, false
		}

		if values == nil {
			values = make(map[string]string)
		}
		values[seg.capture] = parts[i]
	}

	return values, true
}

func splitPath(path string) []string {
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return nil
	}

	return strings.Split(path, "/")
}
