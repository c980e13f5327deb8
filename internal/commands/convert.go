package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gnc2ledger-dev/gnc2ledger/internal/config"
	"github.com/gnc2ledger-dev/gnc2ledger/internal/gnucash"
	"github.com/gnc2ledger-dev/gnc2ledger/internal/ledger"
)

func newConvertCommand() *cobra.Command {
	var (
		cleared         bool
		dateFormat      string
		emacsHeader     bool
		forceClobber    bool
		noAccountDefs   bool
		noCommodityDefs bool
		noTransactions  bool
		output          string
		payeeMetadata   bool
		useSymbols      bool
	)

	cmd := &cobra.Command{
		Use:   "convert INPUT_FILE",
		Short: "Convert a GnuCash XML file to a ledger journal",
		Long: "Converts a GnuCash XML file to a text journal that can be processed by\n" +
			"the ledger and hledger command-line programs.\n\n" +
			"The GnuCash file must be saved as uncompressed XML for the conversion\n" +
			"to work. A gnc2ledger.yaml next to the input file supplies flag\n" +
			"defaults; explicit flags always win.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]

			cfg := config.Default()
			if loaded, err := config.Load(filepath.Join(filepath.Dir(input), config.FileName)); err == nil {
				cfg = loaded
			} else if !errors.Is(err, fs.ErrNotExist) {
				return err
			}

			flagSet := func(name string) bool { return cmd.Flags().Changed(name) }
			opts := ledger.Options{
				AllCleared:       cfg.Cleared,
				UseSymbols:       cfg.UseSymbols,
				PayeeMetadata:    cfg.PayeeMetadata,
				EmacsHeader:      cfg.EmacsHeader,
				DateFormat:       cfg.DateFormat,
				SkipCommodities:  cfg.NoCommodityDefs,
				SkipAccounts:     cfg.NoAccountDefs,
				SkipTransactions: cfg.NoTransactions,
			}
			if flagSet("cleared") {
				opts.AllCleared = cleared
			}
			if flagSet("use-symbols") {
				opts.UseSymbols = useSymbols
			}
			if flagSet("payee-metadata") {
				opts.PayeeMetadata = payeeMetadata
			}
			if flagSet("emacs-header") {
				opts.EmacsHeader = emacsHeader
			}
			if flagSet("date-format") {
				opts.DateFormat = dateFormat
			}
			if flagSet("no-commodity-defs") {
				opts.SkipCommodities = noCommodityDefs
			}
			if flagSet("no-account-defs") {
				opts.SkipAccounts = noAccountDefs
			}
			if flagSet("no-transactions") {
				opts.SkipTransactions = noTransactions
			}
			opts.Filename = output

			return runConvert(cmd.OutOrStdout(), input, output, forceClobber, opts)
		},
	}

	cmd.Flags().BoolVarP(&cleared, "cleared", "c", false, "mark every transaction as cleared (*)")
	cmd.Flags().StringVarP(&dateFormat, "date-format", "d", "%Y-%m-%d", "strftime-style pattern for transaction dates")
	cmd.Flags().BoolVarP(&emacsHeader, "emacs-header", "e", false, "prepend a ledger-mode header for Emacs")
	cmd.Flags().BoolVarP(&forceClobber, "force-clobber", "f", false, "overwrite the output file if it already exists")
	cmd.Flags().BoolVar(&noAccountDefs, "no-account-defs", false, "omit account directives from the output")
	cmd.Flags().BoolVar(&noCommodityDefs, "no-commodity-defs", false, "omit commodity directives from the output")
	cmd.Flags().BoolVar(&noTransactions, "no-transactions", false, "omit transactions from the output")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the journal to `FILENAME` instead of stdout")
	cmd.Flags().BoolVar(&payeeMetadata, "payee-metadata", false, "append split memos as '; Payee:' annotations")
	cmd.Flags().BoolVarP(&useSymbols, "use-symbols", "s", false, "use currency symbols instead of codes")

	return cmd
}

func runConvert(stdout io.Writer, input, output string, force bool, opts ledger.Options) error {
	f, err := os.Open(input)
	if err != nil {
		return fmt.Errorf("opening input: %w", err)
	}
	defer f.Close()

	book, err := gnucash.Load(f, opts.UseSymbols)
	if err != nil {
		return err
	}

	text, err := ledger.Render(book, opts)
	if err != nil {
		return err
	}

	if output == "" {
		_, err = io.WriteString(stdout, text)
		return err
	}

	if _, err := os.Stat(output); err == nil && !force {
		return fmt.Errorf("output file %s exists; pass -f to overwrite it", output)
	}
	if err := os.WriteFile(output, []byte(text), 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	return nil
}
