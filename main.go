package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/rcouto/produtividade-rateio/config"
	"github.com/rcouto/produtividade-rateio/handler"
	"github.com/rcouto/produtividade-rateio/service"
	"github.com/rcouto/produtividade-rateio/utils"
)

func main() {
	txtOutput := flag.String("txt-output", "", "output text file path (default: same name as the PDF with .txt extension)")
	output := flag.String("csv-output", "", "output file path (default: same name as the PDF with the format's extension)")
	printData := flag.Bool("print", false, "print extracted records")
	noClean := flag.Bool("no-clean", false, "do not clean the text (keep headers and totalization sections)")
	amount := flag.String("amount", "", `total amount to distribute based on percentages, Brazilian format (e.g. "9902,53")`)
	format := flag.String("format", "csv", "output format: csv, json or xlsx")
	serve := flag.Bool("serve", false, "start the HTTP API instead of converting files")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <pdf-file-or-directory>\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg := config.LoadConfig()

	// PDF extraction is chatty about missing CropBoxes; keep the
	// console to actual output.
	log.SetOutput(service.NewWarningFilter(os.Stderr, []string{cfg.SuppressedWarning}))

	pdfProcessor := service.NewPDFProcessor()
	rateioService := service.NewRateioService(pdfProcessor)

	if *serve {
		runServer(cfg, rateioService)
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	path := flag.Arg(0)

	opts := service.ConvertOptions{
		TxtOutput:          *txtOutput,
		Output:             *output,
		Print:              *printData,
		Clean:              !*noClean,
		Format:             *format,
		DistributionAmount: utils.ParseAmount(*amount),
	}

	info, err := os.Stat(path)
	if err != nil {
		log.Fatalf("Failed to access %s: %v", path, err)
	}

	switch {
	case !info.IsDir() && strings.EqualFold(filepath.Ext(path), ".pdf"):
		if _, err := rateioService.ProcessPDF(path, opts); err != nil {
			log.Fatalf("Failed to process %s: %v", path, err)
		}
	case info.IsDir():
		if err := rateioService.ProcessDirectory(path, opts); err != nil {
			log.Fatalf("Failed to process directory %s: %v", path, err)
		}
	default:
		log.Fatal("Invalid input. Please provide a PDF file or directory containing PDF files.")
	}
}

func runServer(cfg *config.Config, rateioService *service.RateioService) {
	rateioHandler := handler.NewRateioHandler(rateioService)

	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxFileSize

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Produtividade Rateio",
		})
	})

	api := router.Group("/api/v1")
	{
		rateio := api.Group("/rateio")
		{
			rateio.POST("/convert", rateioHandler.Convert)
		}
	}

	log.Printf("Starting Produtividade Rateio API on port %s", cfg.ServerPort)
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
