package token

var keywords = map[string]Kind{
	"impl":  KwImpl,
	"for":   KwFor,
	"where": KwWhere,
	"const": KwConst,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — только lowercase версии распознаются.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
