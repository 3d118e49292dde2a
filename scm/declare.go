/*
Copyright (C) 2025  Carl-Philip Hänsch

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package scm

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Declaration describes one builtin or special form: docs, arity bounds and
// (for builtins) the native implementation. Special forms carry a nil Fn and
// exist for (help) and the generated documentation only.
type Declaration struct {
	Name         string
	Desc         string
	MinParameter int
	MaxParameter int
	Params       []DeclarationParameter
	Returns      string // any | number | int | bool | func | list | symbol | nil
	Fn           func(...Scmer) Scmer
}

type DeclarationParameter struct {
	Name string
	Type string // any | number | int | bool | func | list | symbol | nil
	Desc string
}

var declaration_titles []string
var declarations map[string]*Declaration = make(map[string]*Declaration)
var declarations_hash map[string]*Declaration = make(map[string]*Declaration)

func DeclareTitle(title string) {
	declaration_titles = append(declaration_titles, "#"+title)
}

// Declare registers a declaration and, for natives, binds the function into
// env. Apply consults the registry by code pointer to enforce the declared
// argument-count bounds, so every Fn here must be its own function literal.
func Declare(env *Env, def *Declaration) {
	declaration_titles = append(declaration_titles, def.Name)
	declarations[def.Name] = def
	if def.Fn != nil {
		declarations_hash[fmt.Sprintf("%p", def.Fn)] = def
		env.Vars[Symbol(def.Name)] = def.Fn
	}
}

// DeclarationForValue resolves a callable head (symbol or native func) to
// its Declaration.
func DeclarationForValue(v Scmer) *Declaration {
	switch h := v.(type) {
	case Symbol:
		if d, ok := declarations[string(h)]; ok {
			return d
		}
	case func(...Scmer) Scmer:
		if d, ok := declarations_hash[fmt.Sprintf("%p", h)]; ok {
			return d
		}
	}
	return nil
}

func Help(fn Scmer) {
	if fn == nil {
		fmt.Println("Available functions:")
		for _, title := range declaration_titles {
			if title[0] == '#' {
				fmt.Println("")
				fmt.Println("-- " + title[1:] + " --")
			} else {
				fmt.Println("  " + title + ": " + strings.Split(declarations[title].Desc, "\n")[0])
			}
		}
		fmt.Println("")
		fmt.Println("get further information by typing (help functionname)")
		return
	}
	def := DeclarationForValue(fn)
	if def == nil {
		panic(EvaluationError{"function not found: " + String(fn)})
	}
	fmt.Println("Help for: " + def.Name)
	fmt.Println("===")
	fmt.Println("")
	fmt.Println(def.Desc)
	fmt.Println("")
	fmt.Println("Allowed nø of parameters: ", def.MinParameter, "-", def.MaxParameter)
	fmt.Println("")
	for _, p := range def.Params {
		fmt.Println(" - " + p.Name + " (" + p.Type + "): " + p.Desc)
	}
	fmt.Println("")
}

// slugify makes a filesystem-safe, lowercase slug from a chapter title.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, " ", "-")
	var b strings.Builder
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return "chapter"
	}
	return b.String()
}

// WriteDocumentation generates Markdown docs: index.md with links to
// chapters and one <chapter>.md per DeclareTitle, in declaration order.
func WriteDocumentation(folder string) error {
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return fmt.Errorf("failed to create folder %q: %w", folder, err)
	}

	type chapter struct {
		title string
		fns   []*Declaration
	}
	var chapters []*chapter
	var current *chapter
	for _, t := range declaration_titles {
		if strings.HasPrefix(t, "#") {
			current = &chapter{title: strings.TrimSpace(t[1:])}
			chapters = append(chapters, current)
			continue
		}
		def, ok := declarations[t]
		if !ok {
			continue
		}
		if current == nil {
			current = &chapter{title: "General"}
			chapters = append(chapters, current)
		}
		current.fns = append(current.fns, def)
	}

	var index strings.Builder
	index.WriteString("# Documentation\n\n")
	for _, ch := range chapters {
		if len(ch.fns) == 0 {
			continue
		}
		slug := slugify(ch.title)
		fmt.Fprintf(&index, "- [%s](%s.md)\n", ch.title, slug)

		var b strings.Builder
		fmt.Fprintf(&b, "# %s\n\n", ch.title)
		for _, def := range ch.fns {
			fmt.Fprintf(&b, "## %s\n\n", def.Name)
			if def.Desc != "" {
				fmt.Fprintf(&b, "%s\n\n", def.Desc)
			}
			fmt.Fprintf(&b, "**Allowed number of parameters:** %d–%d\n\n", def.MinParameter, def.MaxParameter)
			for _, p := range def.Params {
				fmt.Fprintf(&b, "- **%s** (`%s`): %s\n", p.Name, p.Type, p.Desc)
			}
			fmt.Fprintf(&b, "\n**Returns:** `%s`\n\n", def.Returns)
		}
		if err := os.WriteFile(filepath.Join(folder, slug+".md"), []byte(b.String()), 0o644); err != nil {
			return err
		}
	}
	return os.WriteFile(filepath.Join(folder, "index.md"), []byte(index.String()), 0o644)
}
