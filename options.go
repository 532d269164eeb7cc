package querybuilder

import (
	"log/slog"

	"github.com/biyonik/go-query-builder/dialect"
)

// Option, bir QueryBuilder örneği üzerinde çalışan yapılandırma fonksiyonudur.
//
// Örnek:
//
//	qb := querybuilder.New("users",
//	    querybuilder.WithLogger(logger),
//	)
type Option func(*QueryBuilder)

// WithGrammar, derleme aşamasında kullanılacak grameri değiştirir.
// Varsayılan olarak dialect.ANSI() kullanılır. nil verilirse varsayılan korunur.
func WithGrammar(g dialect.Grammar) Option {
	return func(b *QueryBuilder) {
		if g != nil {
			b.grammar = g
		}
	}
}

// WithLogger, Build sırasında derlenen sorguları ve doğrulama hatalarını
// kaydedecek logger'ı ayarlar. Sorgular Debug, doğrulama hataları Warn
// seviyesinde yazılır.
func WithLogger(logger *slog.Logger) Option {
	return func(b *QueryBuilder) {
		b.logger = logger
	}
}

// applyOptions, verilen tüm Option'ları sırayla uygular. nil olanlar atlanır.
func applyOptions(b *QueryBuilder, opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(b)
		}
	}
}
