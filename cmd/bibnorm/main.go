// Command bibnorm cleans a delimited corpus file (one record per line,
// whitespace-tokenized) and prints an aggregate JSON report: record and
// token counts plus how many output tokens are owned copies versus views
// into the input, which is the pipeline's allocation footprint.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/cognicore/bibnorm/internal/corpus"
	"github.com/cognicore/bibnorm/internal/export"
	"github.com/cognicore/bibnorm/pkg/bibnorm/clean"
	"github.com/cognicore/bibnorm/pkg/bibnorm/config"
	"github.com/cognicore/bibnorm/pkg/bibnorm/stem"
)

type report struct {
	Records     int64  `json:"records"`
	TokensIn    int64  `json:"tokens_in"`
	TokensOut   int64  `json:"tokens_out"`
	OwnedTokens int64  `json:"owned_tokens"`
	ViewTokens  int64  `json:"view_tokens"`
	Exported    int64  `json:"exported,omitempty"`
	ElapsedMS   int64  `json:"elapsed_ms"`
	Variant     string `json:"variant"`
}

func main() {
	var (
		input     = flag.String("input", "", "Path to delimited corpus file (required)")
		variant   = flag.String("variant", "title", "Pipeline variant: text, title or author")
		cfgPath   = flag.String("config", "", "Optional pipeline config YAML; overrides the other pipeline flags")
		minLength = flag.Int("min-length", 0, "Inclusive min token length threshold (0 = default)")
		decode    = flag.Bool("html", false, "Decode HTML entities")
		stemLang  = flag.String("stem", "", "Stem cleaned tokens with this language")
		dbPath    = flag.String("db", "", "Optional: export cleaned records to this SQLite database")
	)
	flag.Parse()

	if *input == "" {
		log.Fatal("--input required")
	}

	cfg := &config.Pipeline{
		Variant:        *variant,
		MinTokenLength: *minLength,
		DecodeEntities: *decode,
		Stemming:       *stemLang != "",
		StemLanguage:   *stemLang,
	}
	if *cfgPath != "" {
		loaded, err := config.LoadPipeline(*cfgPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("validate config: %v", err)
	}

	ctx := context.Background()

	var writer *export.Writer
	if *dbPath != "" {
		w, err := export.Open(ctx, *dbPath)
		if err != nil {
			log.Fatalf("open export db: %v", err)
		}
		defer w.Close()
		writer = w
	}

	v := cfg.CleanVariant()
	opts := cfg.Options()

	rep := report{Variant: v.String()}
	start := time.Now()

	err := corpus.EachRecord(*input, func(rec corpus.Record) error {
		rep.Records++
		rep.TokensIn += int64(len(rec.Tokens))

		pipeline := clean.New(v, rec.Tokens, opts)
		pipeline.Clean()
		if cfg.Stemming && cfg.StemLanguage != "" {
			if err := pipeline.Stem(stem.Language(cfg.StemLanguage)); err != nil {
				return err
			}
		}

		seq := pipeline.Sequence()
		owned := seq.CountOwned()
		rep.TokensOut += int64(len(seq))
		rep.OwnedTokens += int64(owned)
		rep.ViewTokens += int64(len(seq) - owned)

		if writer != nil {
			if _, err := writer.Write(ctx, v.String(), rec.Raw, seq.Strings()); err != nil {
				return fmt.Errorf("export line %d: %w", rec.Line, err)
			}
			rep.Exported++
		}
		return nil
	})
	if err != nil {
		log.Fatalf("clean corpus: %v", err)
	}
	rep.ElapsedMS = time.Since(start).Milliseconds()

	out, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		log.Fatalf("marshal report: %v", err)
	}
	fmt.Println(string(out))
}
