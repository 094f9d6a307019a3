package driver

import "unicode/utf8"

// Сканер хост-текста: ищет места вызова `marker!( ... )`, не заглядывая
// внутрь строк, символьных литералов и комментариев. Хост-текст не
// токенизируется целиком — достаточно уметь перепрыгивать непрозрачные
// фрагменты.

type callSite struct {
	// start — смещение первого байта имени маркера.
	Start int
	// Open — смещение открывающей '('.
	Open int
}

// findCallSite ищет следующий вызов маркера начиная с from.
func findCallSite(b []byte, from int, marker string) (callSite, bool) {
	i := from
	for i < len(b) {
		if j := skipOpaque(b, i); j != i {
			i = j
			continue
		}
		if !isHostIdentStart(b[i]) {
			i++
			continue
		}
		s := i
		i++
		for i < len(b) && isHostIdentPart(b[i]) {
			i++
		}
		if string(b[s:i]) != marker {
			continue
		}
		j := skipSpace(b, i)
		if j >= len(b) || b[j] != '!' {
			continue
		}
		j = skipSpace(b, j+1)
		if j >= len(b) || b[j] != '(' {
			continue
		}
		return callSite{Start: s, Open: j}, true
	}
	return callSite{}, false
}

// matchParen возвращает смещение парной ')' для скобки в позиции open.
func matchParen(b []byte, open int) (int, bool) {
	depth := 0
	i := open
	for i < len(b) {
		if j := skipOpaque(b, i); j != i {
			i = j
			continue
		}
		switch b[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i, true
			}
		}
		i++
	}
	return 0, false
}

// skipOpaque перепрыгивает комментарий, строку или символьный литерал,
// начинающийся в позиции i. Если под i обычный код — возвращает i.
func skipOpaque(b []byte, i int) int {
	switch b[i] {
	case '/':
		if i+1 >= len(b) {
			return i
		}
		switch b[i+1] {
		case '/':
			j := i + 2
			for j < len(b) && b[j] != '\n' {
				j++
			}
			return j
		case '*':
			// блочные комментарии вкладываются
			depth := 1
			j := i + 2
			for j < len(b) && depth > 0 {
				switch {
				case b[j] == '*' && j+1 < len(b) && b[j+1] == '/':
					depth--
					j += 2
				case b[j] == '/' && j+1 < len(b) && b[j+1] == '*':
					depth++
					j += 2
				default:
					j++
				}
			}
			return j
		}
		return i
	case '"':
		j := i + 1
		for j < len(b) {
			if b[j] == '\\' {
				j += 2
				continue
			}
			if b[j] == '"' {
				return j + 1
			}
			j++
		}
		return j
	case '\'':
		return skipCharOrLifetime(b, i)
	}
	return i
}

// skipCharOrLifetime различает 'x' (литерал) и 'a (лифтайм): после
// лифтайма закрывающей кавычки нет.
func skipCharOrLifetime(b []byte, i int) int {
	j := i + 1
	if j >= len(b) {
		return j
	}
	if b[j] == '\\' {
		j += 2
		for j < len(b) && b[j] != '\'' {
			j++
		}
		if j < len(b) {
			j++
		}
		return j
	}
	if isHostIdentStart(b[j]) {
		k := j + 1
		for k < len(b) && isHostIdentPart(b[k]) {
			k++
		}
		if k < len(b) && b[k] == '\'' {
			return k + 1
		}
		return k
	}
	// одиночный символ: '(', '?', ...
	if j+1 < len(b) && b[j+1] == '\'' {
		return j + 2
	}
	return j + 1
}

func skipSpace(b []byte, i int) int {
	for i < len(b) && (b[i] == ' ' || b[i] == '\t' || b[i] == '\n' || b[i] == '\r') {
		i++
	}
	return i
}

func isHostIdentStart(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c >= utf8.RuneSelf
}

func isHostIdentPart(c byte) bool {
	return isHostIdentStart(c) || (c >= '0' && c <= '9')
}
