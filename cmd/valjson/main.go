package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	valjson "github.com/yatagawa/valjson"
	"github.com/yatagawa/valjson/i18n"
	"github.com/yatagawa/valjson/validate"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "validate":
		validateCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "valjson CLI\n\nUsage:\n  valjson validate -schema schema.json|.yaml -doc doc.json|.yaml [-lang en|ja]\n\nExit status:\n  0 document conforms, 1 validation issues found, 2 usage or load error.")
}

func validateCmd(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	var schemaPath string
	var docPath string
	var lang string
	fs.StringVar(&schemaPath, "schema", "", "schema file (.json, .yaml or .yml)")
	fs.StringVar(&docPath, "doc", "", "document file (.json, .yaml or .yml)")
	fs.StringVar(&lang, "lang", "en", "message language (en/ja)")
	_ = fs.Parse(args)
	if schemaPath == "" || docPath == "" {
		fs.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(lang)

	v, err := loadValidator(schemaPath)
	if err != nil {
		fatalf("loading schema: %v", err)
	}
	doc, err := loadDocument(docPath)
	if err != nil {
		fatalf("loading document: %v", err)
	}

	iss := v.Validate(doc)
	if len(iss) == 0 {
		fmt.Println("ok")
		return
	}
	for _, it := range iss {
		fmt.Printf("%s: %s (%s)\n", it.Path, it.Message, it.Code)
	}
	os.Exit(1)
}

func loadValidator(path string) (*validate.Validator, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isYAML(path) {
		return validate.CompileYAML(data)
	}
	return validate.CompileJSON(data)
}

func loadDocument(path string) (any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if isYAML(path) {
		return valjson.DecodeYAML(data)
	}
	return valjson.DecodeJSON(data)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(2)
}
