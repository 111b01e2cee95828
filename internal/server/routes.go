package server

import (
	"net/http"

	"connectrpc.com/connect"
)

// NewMux registers every procedure of the three services
func NewMux(
	translationHandler *TranslationHandler,
	chatHandler *ChatHandler,
	resourceHandler *ResourceHandler,
) *http.ServeMux {
	codec := connect.WithCodec(Codec)

	mux := http.NewServeMux()
	mux.Handle(TranslateProcedure, connect.NewUnaryHandler(TranslateProcedure, translationHandler.Translate, codec))
	mux.Handle(DetectLanguageProcedure, connect.NewUnaryHandler(DetectLanguageProcedure, translationHandler.DetectLanguage, codec))
	mux.Handle(ListLanguagesProcedure, connect.NewUnaryHandler(ListLanguagesProcedure, translationHandler.ListLanguages, codec))
	mux.Handle(ChatProcedure, connect.NewUnaryHandler(ChatProcedure, chatHandler.Chat, codec))
	mux.Handle(ListResourcesProcedure, connect.NewUnaryHandler(ListResourcesProcedure, resourceHandler.ListResources, codec))
	return mux
}

// CORS allows browsers on the given origins to call the Connect procedures
func CORS(next http.Handler, allowedOrigins []string) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = true
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if allowed[origin] {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
		}
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Max-Age", "3600")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
