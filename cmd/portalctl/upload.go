package main

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"scholarportal/internal/adminform"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file>",
	Short: "Upload a file to object storage and print its URL",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, cfg, err := newClient()
		if err != nil {
			return err
		}
		folder, _ := cmd.Flags().GetString("folder")
		if folder == "" {
			folder = cfg.DefaultFolder
		}

		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("opening %s: %w", args[0], err)
		}
		defer f.Close()

		url, err := client.Upload(cmd.Context(), folder, filepath.Base(args[0]), contentTypeFor(args[0]), f)
		if err != nil {
			return err
		}
		fmt.Println(url)
		return nil
	},
}

// attachFile uploads path and stores the URL in the draft via set.
func attachFile[D any](cmd *cobra.Command, form *adminform.Form[D], up adminform.Uploader, folder, path string, set func(d *D, url string)) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	url, err := adminform.Attach(cmd.Context(), form, up, folder, filepath.Base(path), contentTypeFor(path), f, set)
	if err != nil {
		return err
	}
	fmt.Printf("Uploaded %s -> %s\n", path, url)
	return nil
}

func contentTypeFor(path string) string {
	if ct := mime.TypeByExtension(filepath.Ext(path)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// reportFieldErrors prints per-field messages before returning err.
func reportFieldErrors(err error, fields map[string]string) error {
	if len(fields) == 0 {
		return err
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(os.Stderr, "  %s: %s\n", k, fields[k])
	}
	return err
}

func init() {
	uploadCmd.Flags().String("folder", "", "storage folder (default from config, else uploads)")
}
