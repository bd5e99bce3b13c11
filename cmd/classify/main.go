// Command classify runs the feed-item identity classifier over a JSON
// batch of incoming and previously recorded items.
package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/feedlattice/classify/internal/corpus"
	"github.com/feedlattice/classify/internal/logger"
	"github.com/feedlattice/classify/pkg/classifyengine"
)

var (
	version = "0.1.0"

	configFile string
	verbose    bool
	debug      bool
	trace      bool

	inputFile      string
	outputFile     string
	existingDBPath string
	channel        string
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "classify",
		Short:   "Feed-item identity classifier",
		Long:    "Classifies a batch of incoming syndication-feed items against previously recorded items, emitting insert/update/skip and a resolved identity depth.",
		Version: version,
	}

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Classify one batch",
		Long:  "Reads a JSON batch (newItems, existingItems, depth) from a file or stdin, classifies it, and writes the result as JSON.",
		RunE:  runClassify,
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Configuration file (YAML or JSON)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug logging")
	rootCmd.PersistentFlags().BoolVar(&trace, "trace", false, "Emit the trace event stream as debug log lines")

	runCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Batch input file (default: stdin)")
	runCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Result output file (default: stdout)")
	runCmd.Flags().StringVar(&existingDBPath, "existing-db", "", "Replay corpus bbolt file to load existingItems from")
	runCmd.Flags().StringVar(&channel, "channel", "", "Channel bucket to read in --existing-db")

	rootCmd.AddCommand(runCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func buildLogger() *logger.Logger {
	level := logger.InfoLevel
	if debug {
		level = logger.DebugLevel
	} else if verbose {
		level = logger.DebugLevel
	}
	return logger.New(logger.Config{Level: level, Pretty: !debug, Output: os.Stderr}).WithComponent("classify")
}

func runClassify(cmd *cobra.Command, args []string) error {
	log := buildLogger()

	cfg := classifyengine.DefaultConfig()
	if configFile != "" {
		loaded, err := classifyengine.LoadFromFile(configFile)
		if err != nil {
			return fmt.Errorf("failed to load config file: %w", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if existingDBPath != "" {
		cfg.ExistingDBPath = existingDBPath
	}
	if channel != "" {
		cfg.Channel = channel
	}
	if trace {
		cfg.Trace = true
	}

	raw, err := readInput()
	if err != nil {
		return fmt.Errorf("failed to read batch input: %w", err)
	}

	var batch batchInput
	if err := json.Unmarshal(raw, &batch); err != nil {
		return fmt.Errorf("failed to parse batch input: %w", err)
	}
	if batch.Depth != "" {
		cfg.Depth = batch.Depth
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid batch depth: %w", err)
		}
	}

	newItems := make([]classifyengine.Item, len(batch.NewItems))
	for i, d := range batch.NewItems {
		newItems[i] = d.toModel()
	}

	existingItems, err := loadExisting(batch, cfg)
	if err != nil {
		return err
	}

	log.WithItemCount(len(newItems)).Info("starting classification")

	policy := &classifyengine.Policy{}
	if cfg.Trace {
		log.SetLevel(logger.DebugLevel)
		policy.Trace = logger.TraceSink(log)
	}

	result, err := classifyengine.Classify(newItems, existingItems, cfg.ResolveDepth(), policy)
	if err != nil {
		return fmt.Errorf("classify failed: %w", err)
	}

	log.ClassifyEvent(cfg.Channel, result.IdentityDepth, len(result.Inserts), len(result.Updates))
	skipped := len(newItems) - len(result.Inserts) - len(result.Updates)
	fmt.Fprintf(os.Stderr, "inserts=%d updates=%d skipped=%d depth=%s\n",
		len(result.Inserts), len(result.Updates), skipped, result.IdentityDepth)

	if err := writeOutput(result); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}

func readInput() ([]byte, error) {
	if inputFile == "" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(inputFile)
}

func loadExisting(batch batchInput, cfg *classifyengine.Config) ([]classifyengine.ExistingItem, error) {
	if cfg.ExistingDBPath == "" {
		existing := make([]classifyengine.ExistingItem, len(batch.ExistingItems))
		for i, d := range batch.ExistingItems {
			existing[i] = d.toModel()
		}
		return existing, nil
	}

	store, err := corpus.Open(cfg.ExistingDBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open replay corpus: %w", err)
	}
	defer store.Close()

	return store.Load(cfg.Channel)
}

func writeOutput(result classifyengine.Result) error {
	data, err := json.MarshalIndent(resultToDTO(result), "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if outputFile == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outputFile, data, 0644)
}
