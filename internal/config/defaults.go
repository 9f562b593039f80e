package config

// ApplyDefaults sets default values for any zero values in cfg.
func ApplyDefaults(cfg *Config) {
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8091
	}
	if cfg.Storage.DatabasePath == "" {
		cfg.Storage.DatabasePath = "/usr/local/var/matome/data/db/documents.db"
	}
	if cfg.Storage.KeywordIndexPath == "" {
		cfg.Storage.KeywordIndexPath = "/usr/local/var/matome/data/indices/bleve"
	}
	if cfg.Storage.LabelsPath == "" {
		cfg.Storage.LabelsPath = "/usr/local/var/matome/data/labels.txt"
	}
	if cfg.Corpus.Extensions == nil {
		cfg.Corpus.Extensions = []string{".txt", ".md", ".rst", ".pdf", ".docx", ".xlsx"}
	}
	if len(cfg.Corpus.Directories) > 0 && cfg.Corpus.Recursive == nil {
		t := true
		cfg.Corpus.Recursive = &t
	}
	if cfg.Vectorize.MaxFeatures == 0 {
		cfg.Vectorize.MaxFeatures = 2000
	}
	if cfg.Vectorize.MinDocumentFrequency == 0 {
		cfg.Vectorize.MinDocumentFrequency = 2
	}
	if cfg.Vectorize.MinTokenLength == 0 {
		cfg.Vectorize.MinTokenLength = 2
	}
	if cfg.Coarse.Representatives == 0 {
		cfg.Coarse.Representatives = 100
	}
	if cfg.Coarse.DeltaThreshold == 0 {
		cfg.Coarse.DeltaThreshold = 0.01
	}
	if cfg.Cluster.Epsilon == 0 {
		cfg.Cluster.Epsilon = 0.35
	}
	if cfg.Cluster.MinPoints == 0 {
		cfg.Cluster.MinPoints = 3
	}
}
