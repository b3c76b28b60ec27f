// Package matching decide se um resultado de busca representa o domínio ou
// negócio monitorado
package matching

import (
	"net/url"
	"regexp"
	"strings"

	serpapidomain "github.com/vfg2006/rank-tracker-api/infrastructure/integrator/serpapi/domain"
)

var (
	tldSuffixRegex = regexp.MustCompile(`\.(es|com|net|org|eu|io|co)$`)
	nonAlnumRegex  = regexp.MustCompile(`[^a-z0-9]`)
	// Tokens com cara de domínio dentro de texto corrido da resposta de IA
	domainTokenRegex = regexp.MustCompile(`\b((?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)+[a-zA-Z]{2,})\b`)
)

// NormalizeDomain extrai o host normalizado de uma URL ou campo de site:
// sem esquema, sem www. inicial, minúsculo. URL inaproveitável retorna
// ok=false e nunca erro, para não derrubar o chamador.
func NormalizeDomain(raw string) (string, bool) {
	if raw == "" {
		return "", false
	}

	full := raw
	if strings.HasPrefix(raw, "//") {
		full = "https:" + raw
	} else if !strings.HasPrefix(raw, "http") {
		full = "https://" + raw
	}

	parsed, err := url.Parse(full)
	if err != nil || parsed.Hostname() == "" {
		return "", false
	}

	host := strings.ToLower(parsed.Hostname())
	return strings.TrimPrefix(host, "www."), true
}

// DomainBase reduz o domínio alvo à sua “marca”: sem www., sem o sufixo de
// TLD conhecido e só com caracteres alfanuméricos minúsculos. É a base da
// heurística de título para listagens locais sem site.
func DomainBase(filteredDomain string) string {
	base := strings.TrimPrefix(filteredDomain, "www.")
	base = tldSuffixRegex.ReplaceAllString(base, "")
	return nonAlnumRegex.ReplaceAllString(strings.ToLower(base), "")
}

// canonicalTarget normaliza o domínio alvo antes de qualquer comparação.
// A insensibilidade a www. e esquema vale nos dois lados do confronto, mesmo
// quando o chamador passa o domínio cru.
func canonicalTarget(filteredDomain string) string {
	if normalized, ok := NormalizeDomain(filteredDomain); ok {
		return normalized
	}
	return filteredDomain
}

// MatchOrganicLink compara o link de um resultado orgânico com o domínio
// alvo. Resultados orgânicos sempre carregam link; não há fallback de título.
func MatchOrganicLink(link, filteredDomain string) (string, bool) {
	target := canonicalTarget(filteredDomain)

	resultDomain, ok := NormalizeDomain(link)
	if !ok || resultDomain != target {
		return "", false
	}
	return resultDomain, true
}

// MatchLocalCandidate aplica a cadeia de heurísticas a uma listagem local:
// campo website, depois links.website, e por fim a comparação frouxa de
// título contra a base do domínio (listagens costumam exibir só a marca).
func MatchLocalCandidate(candidate serpapidomain.LocalResult, filteredDomain string) (string, bool) {
	target := canonicalTarget(filteredDomain)

	if candidate.Website != "" {
		if resultDomain, ok := NormalizeDomain(candidate.Website); ok {
			return resultDomain, resultDomain == target
		}
		return "", false
	}

	if candidate.Links != nil && candidate.Links.Website != "" {
		if resultDomain, ok := NormalizeDomain(candidate.Links.Website); ok {
			return resultDomain, resultDomain == target
		}
		return "", false
	}

	if candidate.Title != "" {
		cleanTitle := nonAlnumRegex.ReplaceAllString(strings.ToLower(candidate.Title), "")
		domainBase := DomainBase(target)

		if domainBase != "" && cleanTitle != "" &&
			(strings.Contains(cleanTitle, domainBase) || strings.Contains(domainBase, cleanTitle)) {
			return target, true
		}
	}

	return "", false
}

// ExtractDomainsInOrder percorre recursivamente os blocos de texto da
// resposta de IA e retorna os domínios citados, na ordem da primeira menção,
// sem duplicatas. Links embutidos têm precedência sobre tokens do snippet.
func ExtractDomainsInOrder(blocks []serpapidomain.TextBlock) []string {
	domains := make([]string, 0)
	seen := make(map[string]bool)

	add := func(domain string) {
		if domain != "" && !seen[domain] {
			seen[domain] = true
			domains = append(domains, domain)
		}
	}

	var walk func(block serpapidomain.TextBlock)
	walk = func(block serpapidomain.TextBlock) {
		for _, linkObj := range block.SnippetLinks {
			clean := strings.TrimSpace(linkObj.Link)
			if !strings.HasPrefix(clean, "http") {
				continue
			}

			withoutScheme := strings.TrimPrefix(strings.TrimPrefix(clean, "https://"), "http://")
			host := strings.ToLower(strings.SplitN(withoutScheme, "/", 2)[0])
			add(strings.TrimPrefix(host, "www."))
		}

		if block.Snippet != "" {
			for _, match := range domainTokenRegex.FindAllStringSubmatch(block.Snippet, -1) {
				add(strings.TrimPrefix(strings.ToLower(match[1]), "www."))
			}
		}

		for _, child := range block.List {
			walk(child)
		}
	}

	for _, block := range blocks {
		walk(block)
	}

	return domains
}

// AllSnippets coleta os snippets de toda a árvore de blocos, em ordem
func AllSnippets(blocks []serpapidomain.TextBlock) []string {
	snippets := make([]string, 0)

	var walk func(block serpapidomain.TextBlock)
	walk = func(block serpapidomain.TextBlock) {
		if block.Snippet != "" {
			snippets = append(snippets, block.Snippet)
		}
		for _, child := range block.List {
			walk(child)
		}
	}

	for _, block := range blocks {
		walk(block)
	}

	return snippets
}

// MentionsBusiness verifica se o nome do negócio aparece no texto
// concatenado da resposta de IA
func MentionsBusiness(blocks []serpapidomain.TextBlock, normalizedBusiness string) bool {
	if normalizedBusiness == "" {
		return false
	}

	allText := strings.ToLower(strings.Join(AllSnippets(blocks), " "))
	return strings.Contains(allText, normalizedBusiness)
}
