package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/appengine-ltd/azure-guardian/internal/ai"
	"github.com/appengine-ltd/azure-guardian/internal/config"
	"github.com/appengine-ltd/azure-guardian/internal/game"
)

type docFile struct {
	Name    string
	Title   string
	Content string
}

func main() {
	root := filepath.Join("docs", "reference")
	if err := os.MkdirAll(root, 0o755); err != nil {
		fatal(err)
	}

	settings, err := generateSettingsDoc()
	if err != nil {
		fatal(err)
	}
	files := []docFile{
		generateKindsDoc(),
		generateModelsDoc(),
		settings,
	}
	for _, f := range files {
		path := filepath.Join(root, f.Name)
		if err := os.WriteFile(path, []byte(f.Content), 0o644); err != nil {
			fatal(err)
		}
		fmt.Printf("wrote %s\n", path)
	}

	index := generateIndex(files)
	indexPath := filepath.Join(root, "README.md")
	if err := os.WriteFile(indexPath, []byte(index), 0o644); err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %s\n", indexPath)
}

func generateIndex(files []docFile) string {
	var b strings.Builder
	b.WriteString("# Reference\n\n")
	b.WriteString("Generated from the current Go source using `go run ./cmd/docsgen`.\n\n")
	for _, f := range files {
		fmt.Fprintf(&b, "- [%s](./%s)\n", f.Title, f.Name)
	}
	return b.String()
}

func generateKindsDoc() docFile {
	items := game.Catalog()
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})

	var b strings.Builder
	b.WriteString("# Sea Life and Trash\n\n")
	b.WriteString("Source: `internal/game/catalog.go` (`Catalog`).\n\n")
	fmt.Fprintf(&b, "Total kinds: **%d**.\n\n", len(items))
	b.WriteString("| ID | Name | Category | Score | Speed | Depth | Size | Colour |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- | --- |\n")
	for _, k := range items {
		fmt.Fprintf(&b, "| %s | %s | %s | %+d | %s | %s | %s | `%s` |\n",
			escape(string(k.ID)),
			escape(k.Name),
			k.Category,
			k.Score,
			formatFloat(k.Speed),
			k.Depth,
			sizeName(k.Size),
			k.Color,
		)
	}
	return docFile{Name: "kinds.md", Title: "Sea Life and Trash", Content: b.String()}
}

func generateModelsDoc() docFile {
	var b strings.Builder
	b.WriteString("# AI Models\n\n")
	b.WriteString("Source: `internal/ai/models.go` (`AvailableModels`). The `model` command cycles through them in this order.\n\n")
	b.WriteString("| ID | Name | Default |\n")
	b.WriteString("| --- | --- | --- |\n")
	def := ai.DefaultModelID()
	for _, m := range ai.AvailableModels() {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", escape(m.ID), escape(m.Name), yesNo(m.ID == def))
	}
	return docFile{Name: "models.md", Title: "AI Models", Content: b.String()}
}

func generateSettingsDoc() (docFile, error) {
	var buf bytes.Buffer
	if err := config.Write(&buf, config.Default()); err != nil {
		return docFile{}, err
	}
	var b strings.Builder
	b.WriteString("# Default Settings\n\n")
	b.WriteString("Pass a file with any subset of these keys to `azure-guardian -config`. ")
	b.WriteString("The same output comes from `azure-guardian -print-config`.\n\n")
	b.WriteString("```toml\n")
	b.WriteString(buf.String())
	b.WriteString("```\n")
	return docFile{Name: "settings.md", Title: "Default Settings", Content: b.String()}, nil
}

func sizeName(s game.SizeClass) string {
	switch s {
	case game.SizeLarge:
		return "large"
	case game.SizeMedium:
		return "medium"
	default:
		return "small"
	}
}

func formatFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", v), "0"), ".")
}

func escape(v string) string {
	v = strings.ReplaceAll(v, "|", "\\|")
	return strings.ReplaceAll(v, "\n", " ")
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
