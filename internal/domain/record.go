package domain

import "strings"

// RawRecord representa um registro aberto retornado pelas fontes upstream
// (linha de resumo, endpoint de detalhes, insights por período). As fontes não
// têm esquema fixo: os nomes de campos variam entre snake_case e camelCase e
// campos extras são comuns, então tudo é tratado como um mapa livre.
type RawRecord map[string]any

// Field retorna o valor de uma chave quando presente e não nulo
func (r RawRecord) Field(key string) (any, bool) {
	if r == nil {
		return nil, false
	}

	v, ok := r[key]
	if !ok || v == nil {
		return nil, false
	}

	return v, true
}

// StringField retorna o valor de uma chave como string, ou vazio
func (r RawRecord) StringField(key string) string {
	v, ok := r.Field(key)
	if !ok {
		return ""
	}

	s, ok := v.(string)
	if !ok {
		return ""
	}

	return strings.TrimSpace(s)
}

// FirstField retorna o primeiro valor presente entre as chaves candidatas
func (r RawRecord) FirstField(keys ...string) (any, bool) {
	for _, key := range keys {
		if v, ok := r.Field(key); ok {
			return v, true
		}
	}

	return nil, false
}
