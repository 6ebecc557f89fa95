package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/embertrack/ember/internal/backup"
	"github.com/embertrack/ember/internal/journal"
	"github.com/embertrack/ember/internal/store"
	"github.com/embertrack/ember/internal/ui"
)

var (
	backupExportFile string
	backupImportFile string
)

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Export and restore your journal — encrypted at rest with age",
	Long: `Export your whole journal (types, rules, and every logged day) as an
age-encrypted snapshot, or restore one. Set EMBER_BACKUP_PASSPHRASE to
skip the prompt.`,
}

var backupExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export an encrypted journal snapshot",
	Args:  cobra.NoArgs,
	RunE:  runBackupExport,
}

var backupImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore the journal from an encrypted snapshot",
	Long: `Replace the current journal with a snapshot created by 'ember backup export'.
The current journal is replaced entirely (no merge) and the same passphrase
used during export is required.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBackupImport,
}

func init() {
	backupCmd.AddCommand(backupExportCmd)
	backupCmd.AddCommand(backupImportCmd)

	backupExportCmd.Flags().StringVarP(&backupExportFile, "output", "o", "", "Output file path (default: stdout)")
	backupImportCmd.Flags().StringVarP(&backupImportFile, "file", "f", "", "Input file path (default: stdin)")
}

func runBackupExport(_ *cobra.Command, _ []string) error {
	passphrase, err := readBackupPassphrase(true)
	if err != nil {
		return err
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	var w io.Writer
	if backupExportFile != "" {
		dir := filepath.Dir(filepath.Clean(backupExportFile))
		if _, err := os.Stat(dir); err != nil {
			return fmt.Errorf("export directory does not exist: %s", dir)
		}
		f, err := os.Create(backupExportFile)
		if err != nil {
			return fmt.Errorf("creating export file: %w", err)
		}
		defer f.Close()
		w = f
	} else {
		w = os.Stdout
	}

	js := journal.NewStore(db.Conn())
	if err := backup.Export(js, passphrase, time.Now(), w); err != nil {
		return formatBackupError(err)
	}

	if backupExportFile != "" {
		fmt.Fprintf(os.Stderr, "%s Journal exported to %s\n", ui.IconOk, ui.Accent.Render(backupExportFile))
	}
	return nil
}

func runBackupImport(_ *cobra.Command, args []string) error {
	passphrase, err := readBackupPassphrase(false)
	if err != nil {
		return err
	}

	importPath := backupImportFile
	if len(args) > 0 {
		importPath = args[0]
	}

	var r io.Reader
	if importPath != "" {
		info, err := os.Stat(importPath)
		if err != nil {
			if os.IsNotExist(err) {
				return fmt.Errorf("import file not found: %s", importPath)
			}
			return fmt.Errorf("checking import file: %w", err)
		}
		if info.IsDir() {
			return fmt.Errorf("import path must be a file, not a directory: %s", importPath)
		}
		f, err := os.Open(importPath)
		if err != nil {
			return fmt.Errorf("opening import file: %w", err)
		}
		defer f.Close()
		r = f
	} else {
		r = os.Stdin
	}

	db, err := store.Open()
	if err != nil {
		return fmt.Errorf("opening store: %w", err)
	}
	defer db.Close()

	snap, err := backup.Import(db.Conn(), passphrase, r)
	if err != nil {
		return formatBackupError(err)
	}

	records := 0
	for _, st := range snap.Types {
		records += len(st.Records)
	}
	ui.Ok(fmt.Sprintf("Journal restored — %d %s, %d %s",
		len(snap.Types), typeWord(len(snap.Types)),
		records, recordWord(records)))
	return nil
}

// readBackupPassphrase resolves the passphrase: env var first, then an
// interactive prompt. Export asks twice so a typo can't lock you out.
func readBackupPassphrase(confirm bool) (string, error) {
	if p := os.Getenv("EMBER_BACKUP_PASSPHRASE"); p != "" {
		return p, nil
	}

	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", fmt.Errorf("backup passphrase required — set %s or run interactively",
			"EMBER_BACKUP_PASSPHRASE")
	}

	fmt.Fprint(os.Stderr, ui.Muted.Render("  Backup passphrase: "))
	passBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return "", fmt.Errorf("reading passphrase: %w", err)
	}

	passphrase := strings.TrimSpace(string(passBytes))
	if passphrase == "" {
		return "", fmt.Errorf("passphrase can't be empty — set EMBER_BACKUP_PASSPHRASE or type it when prompted")
	}

	if confirm {
		fmt.Fprint(os.Stderr, ui.Muted.Render("  Confirm passphrase: "))
		confirmBytes, err := term.ReadPassword(int(syscall.Stdin))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading passphrase confirmation: %w", err)
		}
		if string(passBytes) != string(confirmBytes) {
			return "", fmt.Errorf("passphrases do not match")
		}
	}

	return passphrase, nil
}

// formatBackupError wraps backup errors with actionable messages.
func formatBackupError(err error) error {
	if errors.Is(err, backup.ErrWrongPassphrase) {
		return fmt.Errorf("wrong passphrase — double-check EMBER_BACKUP_PASSPHRASE or try again interactively")
	}
	if errors.Is(err, backup.ErrCorruptedBackup) {
		return fmt.Errorf("backup file appears corrupted or is not an ember snapshot")
	}
	return err
}

func typeWord(n int) string {
	if n == 1 {
		return "type"
	}
	return "types"
}

func recordWord(n int) string {
	if n == 1 {
		return "record"
	}
	return "records"
}
