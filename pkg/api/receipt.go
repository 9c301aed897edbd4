package api

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MdSufiyan005/INHACK/cli/pkg/client"
	cli "github.com/MdSufiyan005/INHACK/cli/pkg/errors"
	"github.com/MdSufiyan005/INHACK/cli/pkg/logger"
)

// MaxReceiptSizeMB is the upload limit enforced before any request is sent
const MaxReceiptSizeMB = 10

var allowedImageExts = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// ValidateReceiptFile runs the client-side checks on a receipt image:
// the file exists, has an allowed image extension, and is within the
// size limit. Called before UploadReceipt so no request goes out for a
// file the backend would reject anyway.
func ValidateReceiptFile(filePath string) error {
	info, err := os.Stat(filePath)
	if err != nil {
		return cli.FileNotFoundError(filePath)
	}

	ext := strings.ToLower(filepath.Ext(filePath))
	if !allowedImageExts[ext] {
		return cli.ImageFormatError(strings.TrimPrefix(ext, "."))
	}

	sizeMB := float64(info.Size()) / (1024 * 1024)
	if sizeMB > MaxReceiptSizeMB {
		return cli.ImageSizeError(sizeMB, MaxReceiptSizeMB)
	}

	return nil
}

// UploadReceipt sends a receipt image for line-item extraction. The
// intent (purchase or sale) classifies every extracted item; all rows
// from one scan submit as the same kind.
func UploadReceipt(filePath, intent string) (*ScanResponse, error) {
	logger.Debug("Uploading receipt", "file_path", filePath, "intent", intent)

	if intent != "purchase" && intent != "sale" {
		return nil, cli.ValidationFailed("intent", "must be purchase or sale")
	}

	if err := ValidateReceiptFile(filePath); err != nil {
		return nil, err
	}

	resp, err := client.GetClient().
		R().
		SetFile("file", filePath).
		SetFormData(map[string]string{
			"intent": intent,
		}).
		Post("/api/upload-receipt/")

	if err := CheckResponse(resp, err); err != nil {
		return nil, err
	}

	var scanResp ScanResponse
	if err := parseBody(resp.Body(), &scanResp); err != nil {
		return nil, err
	}

	if scanResp.Items == nil {
		return nil, cli.MalformedResponse(fmt.Errorf("response has no items array"))
	}

	logger.Debug("Receipt processed", "items", len(scanResp.Items))
	return &scanResp, nil
}
