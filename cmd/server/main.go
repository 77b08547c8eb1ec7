// Command server exposes the inflection engine as a JSON REST API.
//
// Endpoints:
//
//	GET /api/noun?headword=<word>&gender=<м|мо|…>&decl=<notation>[&case=gen&number=pl]
//	GET /api/adjective?headword=<word>&decl=<notation>[&case=...&gender=...&number=...&animate=true][&short=true]
//	GET /api/pronoun?stem=<stem>&decl=<notation>[&case=...&gender=...&number=...&animate=true]
//	GET /api/declension?kind=<noun|adjective|pronoun>&notation=<notation>
package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/rs/cors"
	"go.uber.org/zap"

	zaliznyak "github.com/cours-de-russe/zaliznyak"
)

type config struct {
	Addr         string   `env:"ADDR" env-default:":8080"`
	AllowOrigins []string `env:"ALLOW_ORIGINS" env-default:"*"`
}

// ---- JSON response types ------------------------------------------------

type formJSON struct {
	Case   string `json:"case"`
	Number string `json:"number"`
	Form   string `json:"form"`
}

type paradigmResponse struct {
	Headword   string     `json:"headword,omitempty"`
	Declension string     `json:"declension"`
	Forms      []formJSON `json:"forms"`
}

type declensionResponse struct {
	Kind       string `json:"kind"`
	StemType   int    `json:"stem_type"`
	Stress     string `json:"stress"`
	Flags      string `json:"flags,omitempty"`
	Override   string `json:"override,omitempty"`
	Normalized string `json:"normalized"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func writeJSON(logger *zap.Logger, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("encode response", zap.Error(err))
	}
}

func writeError(logger *zap.Logger, w http.ResponseWriter, err error) {
	status := http.StatusBadRequest
	if errors.Is(err, zaliznyak.ErrUnsupportedAlternation) {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(logger, w, status, errorResponse{Error: err.Error()})
}

// queryContext reads the shared case/number/gender/animacy parameters.
// Absent case means "the whole paradigm".
func queryContext(q map[string][]string) (c zaliznyak.CaseEx, haveCase bool, n zaliznyak.Number, err error) {
	get := func(key string) string {
		if vs := q[key]; len(vs) > 0 {
			return vs[0]
		}
		return ""
	}
	if s := get("case"); s != "" {
		c, err = zaliznyak.ParseCaseEx(s)
		if err != nil {
			return 0, false, 0, err
		}
		haveCase = true
	}
	if get("number") == "pl" || get("number") == "plural" {
		n = zaliznyak.Plural
	}
	return c, haveCase, n, nil
}

func queryGender(q map[string][]string) zaliznyak.Gender {
	if vs := q["gender"]; len(vs) > 0 {
		switch vs[0] {
		case "n", "neuter", "с":
			return zaliznyak.Neuter
		case "f", "feminine", "ж":
			return zaliznyak.Feminine
		}
	}
	return zaliznyak.Masculine
}

func queryAnimacy(q map[string][]string) zaliznyak.Animacy {
	if vs := q["animate"]; len(vs) > 0 {
		if ok, _ := strconv.ParseBool(vs[0]); ok {
			return zaliznyak.Animate
		}
	}
	return zaliznyak.Inanimate
}

// ---- handlers -----------------------------------------------------------

func handleNoun(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		ga, err := zaliznyak.ParseGenderExAnimacy(q.Get("gender"))
		if err != nil {
			writeError(logger, w, err)
			return
		}
		d, err := zaliznyak.ParseNounDeclension(q.Get("decl"))
		if err != nil {
			writeError(logger, w, err)
			return
		}
		noun, err := zaliznyak.NounFromHeadword(q.Get("headword"), ga, d)
		if err != nil {
			writeError(logger, w, err)
			return
		}

		c, haveCase, num, err := queryContext(q)
		if err != nil {
			writeError(logger, w, err)
			return
		}

		resp := paradigmResponse{Headword: q.Get("headword"), Declension: d.String()}
		if haveCase {
			form, err := noun.Inflect(c, num)
			if err != nil {
				writeError(logger, w, err)
				return
			}
			resp.Forms = []formJSON{{Case: c.String(), Number: num.String(), Form: form}}
		} else {
			for _, pc := range zaliznyak.AllCases {
				for _, n := range zaliznyak.AllNumbers {
					form, err := noun.Inflect(pc.Ex(), n)
					if err != nil {
						writeError(logger, w, err)
						return
					}
					resp.Forms = append(resp.Forms, formJSON{Case: pc.Abbr(), Number: n.String(), Form: form})
				}
			}
		}
		writeJSON(logger, w, http.StatusOK, resp)
	}
}

func handleAdjective(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		d, err := zaliznyak.ParseAdjectiveDeclension(q.Get("decl"))
		if err != nil {
			writeError(logger, w, err)
			return
		}
		adj, err := zaliznyak.AdjectiveFromHeadword(q.Get("headword"), d)
		if err != nil {
			writeError(logger, w, err)
			return
		}

		g := queryGender(q)
		an := queryAnimacy(q)
		c, haveCase, num, err := queryContext(q)
		if err != nil {
			writeError(logger, w, err)
			return
		}

		resp := paradigmResponse{Headword: q.Get("headword"), Declension: d.String()}
		short, _ := strconv.ParseBool(q.Get("short"))
		switch {
		case short:
			form, err := adj.InflectShort(g, num)
			if err != nil {
				writeError(logger, w, err)
				return
			}
			resp.Forms = []formJSON{{Number: num.String(), Form: form}}
		case haveCase:
			form, err := adj.Inflect(c, g, num, an)
			if err != nil {
				writeError(logger, w, err)
				return
			}
			resp.Forms = []formJSON{{Case: c.String(), Number: num.String(), Form: form}}
		default:
			for _, pc := range zaliznyak.AllCases {
				for _, n := range zaliznyak.AllNumbers {
					form, err := adj.Inflect(pc.Ex(), g, n, an)
					if err != nil {
						writeError(logger, w, err)
						return
					}
					resp.Forms = append(resp.Forms, formJSON{Case: pc.Abbr(), Number: n.String(), Form: form})
				}
			}
		}
		writeJSON(logger, w, http.StatusOK, resp)
	}
}

func handlePronoun(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		d, err := zaliznyak.ParsePronounDeclension(q.Get("decl"))
		if err != nil {
			writeError(logger, w, err)
			return
		}
		pron := zaliznyak.NewPronoun(q.Get("stem"), d)

		g := queryGender(q)
		an := queryAnimacy(q)
		c, haveCase, num, err := queryContext(q)
		if err != nil {
			writeError(logger, w, err)
			return
		}

		resp := paradigmResponse{Declension: d.String()}
		if haveCase {
			form, err := pron.Inflect(c, g, num, an)
			if err != nil {
				writeError(logger, w, err)
				return
			}
			resp.Forms = []formJSON{{Case: c.String(), Number: num.String(), Form: form}}
		} else {
			for _, pc := range zaliznyak.AllCases {
				for _, n := range zaliznyak.AllNumbers {
					form, err := pron.Inflect(pc.Ex(), g, n, an)
					if err != nil {
						writeError(logger, w, err)
						return
					}
					resp.Forms = append(resp.Forms, formJSON{Case: pc.Abbr(), Number: n.String(), Form: form})
				}
			}
		}
		writeJSON(logger, w, http.StatusOK, resp)
	}
}

func handleDeclension(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		notation := q.Get("notation")
		var resp declensionResponse
		switch kind := q.Get("kind"); kind {
		case "", "noun":
			d, err := zaliznyak.ParseNounDeclension(notation)
			if err != nil {
				writeError(logger, w, err)
				return
			}
			resp = declensionResponse{
				Kind:       "noun",
				StemType:   int(d.StemType),
				Stress:     d.Stress.String(),
				Normalized: d.String(),
			}
			if d.HasOverride {
				resp.Override = d.Override.AbbrZaliznyak()
			}
			resp.Flags = flagString(d.Flags)
		case "adjective":
			d, err := zaliznyak.ParseAdjectiveDeclension(notation)
			if err != nil {
				writeError(logger, w, err)
				return
			}
			resp = declensionResponse{
				Kind:       "adjective",
				StemType:   int(d.StemType),
				Stress:     d.Stress.String(),
				Flags:      flagString(d.Flags),
				Normalized: d.String(),
			}
		case "pronoun":
			d, err := zaliznyak.ParsePronounDeclension(notation)
			if err != nil {
				writeError(logger, w, err)
				return
			}
			resp = declensionResponse{
				Kind:       "pronoun",
				StemType:   int(d.StemType),
				Stress:     d.Stress.String(),
				Flags:      flagString(d.Flags),
				Normalized: d.String(),
			}
		default:
			writeJSON(logger, w, http.StatusBadRequest, errorResponse{Error: "unknown kind " + kind})
			return
		}
		writeJSON(logger, w, http.StatusOK, resp)
	}
}

func flagString(f zaliznyak.DeclensionFlags) string {
	var s string
	if f.Has(zaliznyak.FlagCircle) {
		s += "°"
	}
	if f.Has(zaliznyak.FlagStar) {
		s += "*"
	}
	if f.Has(zaliznyak.FlagCircledOne) {
		s += "①"
	}
	if f.Has(zaliznyak.FlagCircledTwo) {
		s += "②"
	}
	if f.Has(zaliznyak.FlagCircledThree) {
		s += "③"
	}
	if f.Has(zaliznyak.FlagAlternatingYo) {
		s += "ё"
	}
	return s
}

// ---- main ---------------------------------------------------------------

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var cfg config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		logger.Fatal("read config", zap.Error(err))
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/noun", handleNoun(logger))
	mux.HandleFunc("/api/adjective", handleAdjective(logger))
	mux.HandleFunc("/api/pronoun", handlePronoun(logger))
	mux.HandleFunc("/api/declension", handleDeclension(logger))

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.AllowOrigins,
		AllowedMethods: []string{http.MethodGet},
	}).Handler(mux)

	logger.Info("listening", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, handler); err != nil {
		logger.Fatal("server", zap.Error(err))
	}
}
