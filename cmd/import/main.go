package main

import (
	"flag"
	"log"
	"os"

	"velib_directory/internal/config"
	"velib_directory/internal/importer"
	"velib_directory/internal/logger"
)

func main() {
	file := flag.String("file", "velib-pos.csv", "path to the station CSV export")
	flag.Parse()

	logger.Setup()
	db := config.InitDB()

	f, err := os.Open(*file)
	if err != nil {
		log.Fatalf("could not open %s: %v", *file, err)
	}
	defer f.Close()

	stations, rowErrors := importer.Parse(f)
	log.Printf("parsed %d stations, %d bad rows", len(stations), len(rowErrors))
	for i, rowErr := range rowErrors {
		if i >= 5 {
			log.Printf("  ... and %d more", len(rowErrors)-i)
			break
		}
		log.Printf("  - %v", rowErr)
	}

	if err := importer.Import(db, stations); err != nil {
		log.Fatalf("import failed: %v", err)
	}
	log.Printf("✓ %d stations imported", len(stations))
}
