package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/fehkeys/fehkeys/internal/actions"
	"github.com/fehkeys/fehkeys/internal/artifact"
	"github.com/fehkeys/fehkeys/internal/binding"
	"github.com/fehkeys/fehkeys/internal/build"
	"github.com/fehkeys/fehkeys/internal/compiler"
	"github.com/fehkeys/fehkeys/internal/config"
	"github.com/fehkeys/fehkeys/internal/help"
	"github.com/fehkeys/fehkeys/internal/lint"
	"github.com/fehkeys/fehkeys/internal/validate"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	verbose          bool
	jsonOutput       bool
	configFile       string
	keysFile         string
	outputFile       string
	sampleCount      int
	artifactFile     string
	descriptionsFile string

	rootCmd = &cobra.Command{
		Use:   "fehkeys",
		Short: "Compile feh key bindings into the binary table loaded by the viewer.",
		Long:  `fehkeys merges the user's key binding overrides with the built-in defaults, resolves every action, rejects conflicting keys and writes a sorted, indexed binary table that the viewer loads at startup without parsing.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if jsonOutput && !verbose {
				logrus.SetLevel(logrus.WarnLevel)
			} else if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr to avoid polluting stdout, especially for --json output.
	logrus.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format instead of rich text")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Optional: path to a fehkeys.yaml configuration file")

	compileCmd.Flags().StringVarP(&keysFile, "keys", "k", "", "Override binding file (default: first 'keys' file in the config directories)")
	compileCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Artifact path (default: next to the override file or in the config directory)")
	compileCmd.Flags().IntVar(&sampleCount, "sample-count", 0, "Number of sample index entries (default from config, 10)")

	docCmd.Flags().StringVarP(&keysFile, "keys", "k", "", "Override binding file (default: first 'keys' file in the config directories)")
	docCmd.Flags().StringVar(&descriptionsFile, "descriptions", "", "Optional: YAML file of action descriptions")

	showCmd.Flags().StringVarP(&artifactFile, "artifact", "a", "", "Artifact to read (default: first artifact in the config directories)")
	queryCmd.Flags().StringVarP(&artifactFile, "artifact", "a", "", "Artifact to read (default: first artifact in the config directories)")

	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(queryCmd)
	rootCmd.AddCommand(docCmd)

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func main() {
	Execute()
}

// loadConfig returns the --config file if given, otherwise the defaults.
func loadConfig() config.Config {
	cfg := config.Default()
	if configFile != "" {
		var err error
		if cfg, err = config.Load(configFile); err != nil {
			logrus.Fatalf("Unable to load configuration: %v", err)
		}
	}
	if sampleCount != 0 {
		if err := validate.Var(sampleCount, "min=2,max=64"); err != nil {
			logrus.Fatalf("Invalid --sample-count %d: %v", sampleCount, err)
		}
		cfg.SampleCount = sampleCount
	}
	return cfg
}

// locateArtifact returns the --artifact path or the first existing artifact.
func locateArtifact(cfg config.Config) string {
	if artifactFile != "" {
		return artifactFile
	}
	loc, err := cfg.Locator()
	if err != nil {
		logrus.Fatal(err)
	}
	p, ok := loc.FindArtifact()
	if !ok {
		logrus.Fatalf("No %s found in %v; run 'fehkeys compile' first", cfg.ArtifactName, loc.Dirs)
	}
	return p
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var compileCmd = &cobra.Command{
	Use:   "compile",
	Short: "Compile key bindings into the binary artifact",
	Long:  "Merge the override file (if any) with the built-in defaults, write the binding artifact and verify it by reading it back.",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts := build.DefaultOptions()
		opts.Config = loadConfig()
		opts.OverridePath = keysFile
		opts.OutputPath = outputFile

		report, err := build.Run(opts)
		if err != nil {
			var ue actions.UnresolvedError
			if errors.As(err, &ue) {
				logrus.Fatalf("%v (the action symbol table does not match the binding sources)", err)
			}
			logrus.Fatal(err)
		}
		printReport(os.Stdout, report, jsonOutput)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var lintCmd = &cobra.Command{
	Use:   "lint [PATH...]",
	Short: "Check override binding files without writing an artifact",
	Long:  "Check override binding files for malformed lines, unknown keys or actions and conflicting keys. Directories are searched recursively. Defaults to the configuration directories.",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := loadConfig()
		if len(args) == 0 {
			loc, err := cfg.Locator()
			if err != nil {
				logrus.Fatal(err)
			}
			if p, ok := loc.FindOverride(); ok {
				args = []string{p}
			}
		}
		findings := lint.New(actions.Default, cfg.OverrideName).Run(cmd.Context(), args)
		if bad := printFindings(os.Stdout, findings, jsonOutput); bad > 0 {
			logrus.Fatalf("%d of %d file(s) have problems", bad, len(findings))
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the contents of a binding artifact",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		path := locateArtifact(loadConfig())
		a, err := artifact.ReadFile(path)
		if err != nil {
			logrus.Fatalf("Unable to read %s: %v", path, err)
		}
		for _, ns := range binding.Namespaces {
			if !compiler.IsSorted(a.Tables[ns]) {
				logrus.Warnf("%s table in %s is not sorted; the artifact must not be used", ns, path)
			}
		}
		printArtifact(os.Stdout, path, a, actions.Default, jsonOutput)
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var queryCmd = &cobra.Command{
	Use:   "query KEY",
	Short: "Look up which actions a key is bound to",
	Long:  "Parse KEY (e.g. 'q', 'C-Delete') and look it up in every namespace of a binding artifact.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ks, err := binding.ParseKey(args[0])
		if err != nil {
			logrus.Fatalf("Invalid key %q: %v", args[0], err)
		}
		if len(ks.UnknownModifiers) > 0 {
			logrus.Warnf("Ignoring unknown modifier(s) %q", ks.UnknownModifiers)
		}
		path := locateArtifact(loadConfig())
		a, err := artifact.ReadFile(path)
		if err != nil {
			logrus.Fatalf("Unable to read %s: %v", path, err)
		}

		found := false
		for _, ns := range binding.Namespaces {
			var sample compiler.SampleIndex
			if ns == binding.Feh {
				sample = a.Sample
			}
			if id, ok := compiler.Lookup(a.Tables[ns], sample, ks.Code); ok {
				found = true
				fmt.Fprintf(os.Stdout, "%s\t%s\t%s\n", ns, ks.Code, actionName(actions.Default, id))
			}
		}
		if !found {
			fmt.Fprintf(os.Stdout, "%s is not bound\n", ks.Code)
		}
	},
}

//nolint:gochecknoglobals // Cobra command is defined at package scope in current structure.
var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Print the key reference for the current bindings",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		opts := build.DefaultOptions()
		opts.Config = loadConfig()
		opts.OverridePath = keysFile

		c, err := build.Compile(opts)
		if err != nil {
			logrus.Fatal(err)
		}
		var extra map[string]string
		if descriptionsFile != "" {
			if extra, err = help.LoadDescriptions(descriptionsFile); err != nil {
				logrus.Fatal(err)
			}
		}
		topics := help.Topics(c.Help(), help.Descriptions(extra))
		if jsonOutput {
			err = help.RenderJSON(os.Stdout, topics)
		} else {
			err = help.RenderText(os.Stdout, topics)
		}
		if err != nil {
			logrus.Fatal(err)
		}
	},
}
