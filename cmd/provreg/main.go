// Provreg inspects model provider profiles: it loads the registry
// (built-in defaults plus the .provreg/ config file), resolves one
// provider against the current environment, and prints the request URL,
// credential status, and final header set. Credential values are never
// echoed, only their presence.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/germanamz/provreg/pkg/envlookup"
	"github.com/germanamz/provreg/pkg/profile"
	"github.com/germanamz/provreg/pkg/provregdir"
	"github.com/germanamz/provreg/pkg/registry"
)

var (
	labelStyle = lipgloss.NewStyle().Bold(true)
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: provreg [flags] [provider-id]\n\nResolve a provider profile against the current environment.\nWith no provider-id, lists the registered providers.\n\nFlags:\n")
		flag.PrintDefaults()
	}

	dirPath := flag.String("provreg-dir", "", "path to .provreg directory (default: ~/.provreg)")
	envFile := flag.String("env", ".env", "dotenv file to load before resolving")
	flag.Parse()

	if err := run(*dirPath, *envFile, flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(dirPath, envFile, id string) error {
	if err := loadDotEnv(envFile); err != nil {
		return err
	}

	dir, err := resolveDir(dirPath)
	if err != nil {
		return err
	}

	reg, err := registry.Load(dir.ConfigPath())
	if err != nil {
		return err
	}

	if id == "" {
		return listProviders(reg)
	}

	p, ok := reg.Get(id)
	if !ok {
		return fmt.Errorf("unknown provider %q (known: %s)", id, strings.Join(reg.IDs(), ", "))
	}

	resolver := &profile.Resolver{
		Env:        envlookup.OS(),
		PrimaryKey: dir.PrimaryKey(),
	}

	printProfile(id, p, resolver)

	return nil
}

func resolveDir(path string) (provregdir.Dir, error) {
	if path != "" {
		return provregdir.New(path), nil
	}

	return provregdir.Default()
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

func listProviders(reg registry.Registry) error {
	for _, id := range reg.IDs() {
		p, _ := reg.Get(id)
		fmt.Printf("%s  %s\n", labelStyle.Render(id), dimStyle.Render(p.BaseURL))
	}

	return nil
}

func printProfile(id string, p profile.Profile, resolver *profile.Resolver) {
	fmt.Printf("%s %s (%s)\n", labelStyle.Render("provider:"), p.Name, id)
	fmt.Printf("%s %s\n", labelStyle.Render("url:"), p.FullURL())

	switch key, err := resolver.APIKey(p); {
	case err != nil:
		fmt.Printf("%s %s\n", labelStyle.Render("credential:"), errStyle.Render(err.Error()))
	case key == "":
		fmt.Printf("%s %s\n", labelStyle.Render("credential:"), dimStyle.Render("none required"))
	default:
		fmt.Printf("%s %s\n", labelStyle.Render("credential:"), okStyle.Render("set ("+p.EnvKey+")"))
	}

	headers := resolver.Headers(p)
	if len(headers) == 0 {
		return
	}

	fmt.Println(labelStyle.Render("headers:"))

	names := make([]string, 0, len(headers))
	for name := range headers {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("  %s: %s\n", name, headers[name])
	}
}
