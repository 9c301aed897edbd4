package cmd

import (
	"github.com/MdSufiyan005/INHACK/cli/pkg/service"
	"github.com/spf13/cobra"
)

var scanIntent string

var scanCmd = &cobra.Command{
	Use:   "scan <image>",
	Short: "Scan a receipt image for line items",
	Long: `Upload a receipt image (jpg, png, gif, or webp, up to 10MB)
for automatic line-item extraction. Extracted items open in an editable
draft; retained rows are saved as transactions of the chosen intent,
all purchases or all sales.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scanSvc := service.NewScanService(sessions)
		return scanSvc.Scan(args[0], scanIntent)
	},
}

func init() {
	scanCmd.Flags().StringVar(&scanIntent, "intent", "purchase", "Transaction kind for every scanned item: purchase or sale")
}
