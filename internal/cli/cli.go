// Package cli provides the command-line interface for the schema grid converter.
package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/GabrielNunesIT/go-libs/logger"
	"github.com/GabrielNunesIT/schemagrid/internal/adapters/docgen"
	"github.com/GabrielNunesIT/schemagrid/internal/adapters/importers"
	"github.com/GabrielNunesIT/schemagrid/internal/adapters/protocols"
	"github.com/GabrielNunesIT/schemagrid/internal/config"
	"github.com/GabrielNunesIT/schemagrid/internal/domain"
	"github.com/spf13/cobra"
)

// CLI holds the command-line interface configuration.
type CLI struct {
	log     logger.ILogger
	cfg     *config.Config
	rootCmd *cobra.Command

	inputFile   string
	outputFile  string
	format      string
	wsdlVersion string
}

// New creates a new CLI instance.
func New(log logger.ILogger) *CLI {
	cfg, err := config.Load()
	if err != nil {
		log.Errorf("Failed to load configuration, using defaults: %v", err)
		cfg = &config.Config{DefaultFormat: "wsdl", WSDLVersion: "2.0"}
	}

	cli := &CLI{
		log: log,
		cfg: cfg,
	}

	cli.rootCmd = &cobra.Command{
		Use:   "schemagrid",
		Short: "Convert tabular schema grids to and from enterprise wire formats",
		Long: "A CLI tool that converts a flat tabular schema model to WSDL 1.1/2.0, XSD, " +
			"JSON-RPC request templates and SAP IDoc XML, parses those formats back into the " +
			"grid, and exports schema documentation.",
	}

	cli.rootCmd.AddCommand(
		cli.generateCmd(),
		cli.parseCmd(),
		cli.validateCmd(),
		cli.detectCmd(),
		cli.protocolsCmd(),
		cli.importCmd(),
		cli.docCmd(),
	)

	return cli
}

// Execute runs the CLI.
func (c *CLI) Execute() error {
	return c.rootCmd.Execute()
}

func (c *CLI) generateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate wire-format text from a schema grid",
		RunE:  c.runGenerate,
	}

	c.addIOFlags(cmd, true)

	return cmd
}

func (c *CLI) parseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse wire-format text into a schema grid",
		RunE:  c.runParse,
	}

	c.addIOFlags(cmd, true)

	return cmd
}

func (c *CLI) validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a schema grid against a protocol's structural rules",
		RunE:  c.runValidate,
	}

	c.addIOFlags(cmd, true)

	return cmd
}

func (c *CLI) detectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "detect",
		Short: "Guess the wire format of a file",
		RunE:  c.runDetect,
	}

	c.addIOFlags(cmd, false)

	return cmd
}

func (c *CLI) protocolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "protocols",
		Short: "List the supported protocols",
		RunE:  c.runProtocols,
	}
}

func (c *CLI) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import an OpenAPI 3.x specification into a schema grid",
		RunE:  c.runImport,
	}

	c.addIOFlags(cmd, false)

	return cmd
}

func (c *CLI) docCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doc",
		Short: "Export schema documentation (pdf, docx) from a schema grid",
		RunE:  c.runDoc,
	}

	c.addIOFlags(cmd, false)
	cmd.Flags().StringVarP(&c.format, "format", "f", "pdf", "Documentation format: pdf, docx")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// addIOFlags wires the shared input/output/format flags.
func (c *CLI) addIOFlags(cmd *cobra.Command, withFormat bool) {
	cmd.Flags().StringVarP(&c.inputFile, "input", "i", "", "Path to the input file (required)")
	cmd.Flags().StringVarP(&c.outputFile, "output", "o", "", "Path for the output file (default: stdout)")
	_ = cmd.MarkFlagRequired("input")

	if withFormat {
		cmd.Flags().StringVarP(&c.format, "format", "f", c.cfg.DefaultFormat, "Target format")
		cmd.Flags().StringVarP(&c.wsdlVersion, "wsdl-version", "V", c.cfg.WSDLVersion, "WSDL version: 1.1, 2.0")
	}
}

func (c *CLI) runGenerate(_ *cobra.Command, _ []string) error {
	doc, err := c.loadGrid(c.inputFile)
	if err != nil {
		return err
	}

	protocol, err := protocols.CreateProtocol(c.format, &protocols.Config{WSDLVersion: c.wsdlVersion})
	if err != nil {
		return err
	}

	validation := protocol.ValidateStructure(doc)
	if !validation.IsValid {
		c.log.Errorf("Grid failed %s validation: %s", protocol.Name(), strings.Join(validation.Errors, "; "))
	}

	c.log.Infof("Generating %s %s output for %q", protocol.Name(), protocol.Version(), doc.RootName)

	return c.writeOutput([]byte(protocol.GenerateOutput(doc)))
}

func (c *CLI) runParse(_ *cobra.Command, _ []string) error {
	input, err := os.ReadFile(c.inputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	protocol, err := protocols.CreateProtocol(c.format, &protocols.Config{WSDLVersion: c.wsdlVersion})
	if err != nil {
		return err
	}

	result := protocol.ParseInput(string(input))
	if result.Error != "" {
		c.log.Errorf("Parse reported: %s", result.Error)
	}

	doc := domain.SchemaDocument{
		RootName:        result.RootName,
		TargetNamespace: result.TargetNamespace,
		GridData:        result.GridData,
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode grid: %w", err)
	}

	c.log.Infof("Parsed %d grid row(s) from %s", len(result.GridData), c.inputFile)

	return c.writeOutput(append(out, '\n'))
}

func (c *CLI) runValidate(_ *cobra.Command, _ []string) error {
	doc, err := c.loadGrid(c.inputFile)
	if err != nil {
		return err
	}

	protocol, err := protocols.CreateProtocol(c.format, &protocols.Config{WSDLVersion: c.wsdlVersion})
	if err != nil {
		return err
	}

	validation := protocol.ValidateStructure(doc)

	out, err := json.MarshalIndent(validation, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode validation result: %w", err)
	}

	if err := c.writeOutput(append(out, '\n')); err != nil {
		return err
	}

	if !validation.IsValid {
		return fmt.Errorf("grid failed %s validation with %d error(s)", protocol.Name(), len(validation.Errors))
	}

	return nil
}

func (c *CLI) runDetect(_ *cobra.Command, _ []string) error {
	input, err := os.ReadFile(c.inputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	detected := protocols.DetectProtocol(string(input))
	if detected == "" {
		return fmt.Errorf("no known wire format detected in %s", c.inputFile)
	}

	c.log.Infof("Detected format: %s", detected)

	return c.writeOutput([]byte(detected + "\n"))
}

func (c *CLI) runProtocols(_ *cobra.Command, _ []string) error {
	var b strings.Builder

	for _, key := range protocols.GetSupportedProtocols() {
		if !protocols.IsImplemented(key) {
			b.WriteString(fmt.Sprintf("%-8s (not yet implemented)\n", key))
			continue
		}

		protocol, err := protocols.CreateProtocol(key, nil)
		if err != nil {
			return err
		}

		descriptor := domain.Describe(protocol)
		b.WriteString(fmt.Sprintf("%-8s %s %s: %s\n",
			key, descriptor.Name, descriptor.Version, strings.Join(descriptor.SupportedFeatures, ", ")))
	}

	return c.writeOutput([]byte(b.String()))
}

func (c *CLI) runImport(_ *cobra.Command, _ []string) error {
	c.log.Infof("Importing OpenAPI specification from: %s", c.inputFile)

	doc, err := importers.NewOpenAPIImporter().ImportFile(c.inputFile)
	if err != nil {
		return fmt.Errorf("failed to import OpenAPI specification: %w", err)
	}

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode grid: %w", err)
	}

	c.log.Infof("Imported %q with %d grid row(s)", doc.RootName, len(doc.GridData))

	return c.writeOutput(append(out, '\n'))
}

func (c *CLI) runDoc(_ *cobra.Command, _ []string) error {
	doc, err := c.loadGrid(c.inputFile)
	if err != nil {
		return err
	}

	exporter, err := c.getExporter()
	if err != nil {
		return err
	}

	c.log.Infof("Exporting %s documentation for %q", exporter.Format(), doc.RootName)

	outputFile, err := os.Create(c.outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer outputFile.Close()

	if err := exporter.Export(doc, outputFile); err != nil {
		return fmt.Errorf("documentation export failed: %w", err)
	}

	c.log.Infof("Successfully created: %s", c.outputFile)

	return nil
}

func (c *CLI) getExporter() (docgen.Exporter, error) {
	switch strings.ToLower(c.format) {
	case "pdf":
		return docgen.NewPDFExporter(), nil
	case "docx", "word":
		return docgen.NewDocxExporter(), nil
	default:
		return nil, fmt.Errorf("unsupported documentation format: %s (supported: pdf, docx)", c.format)
	}
}

// loadGrid reads a SchemaDocument from a JSON grid file.
func (c *CLI) loadGrid(path string) (*domain.SchemaDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid file: %w", err)
	}

	var doc domain.SchemaDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse grid file: %w", err)
	}

	return &doc, nil
}

// writeOutput writes to the --output file, or stdout when none is given.
func (c *CLI) writeOutput(data []byte) error {
	if c.outputFile == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if err := os.WriteFile(c.outputFile, data, 0o644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	return nil
}
