package config

// Default file paths
const (
	// DefaultDatabasePath is the default path for the annotations database
	DefaultDatabasePath = "./versekeeper.db"

	// DefaultCorpusPath is the default path for the scripture corpus file
	DefaultCorpusPath = "./data/kjv.json"
)
