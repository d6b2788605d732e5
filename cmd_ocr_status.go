package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"arena_client/global"
	"arena_client/util"
)

var ocrStatusCmd = &cobra.Command{
	Use:   "ocr-status",
	Short: "Check whether the OCR service is reachable",
	RunE:  runOCRStatus,
}

func runOCRStatus(cmd *cobra.Command, _ []string) error {
	if err := loadConfig(rootFlags.config); err != nil {
		return err
	}
	cfg := global.ArenaConfig.OCR
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Backend: %s\n", cfg.Backend)
	if cfg.Backend != global.OCRBackendService {
		fmt.Fprintf(out, "Tesseract runs in-process (language %s)\n", cfg.Language)
		return nil
	}

	status := util.NewOCRService(cfg.ServiceHost, cfg.ServicePort, cfg.Timeout).Status()
	keys := make([]string, 0, len(status))
	for k := range status {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(out, "%-17s %v\n", k+":", status[k])
	}
	if running, _ := status["service_running"].(bool); !running {
		return fmt.Errorf("ocr service at %s:%d is not running", cfg.ServiceHost, cfg.ServicePort)
	}
	return nil
}
