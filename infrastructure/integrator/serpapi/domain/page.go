// Package serpapidomain contém as estruturas de resposta da API do SerpAPI
package serpapidomain

// OrganicResult é um resultado orgânico de uma página de busca
type OrganicResult struct {
	Link     string `json:"link"`
	Position int    `json:"position"`
}

// OrganicPage é uma página de resultados orgânicos (engine google)
type OrganicPage struct {
	Results []OrganicResult
}

// LocalLinks é o sub-objeto de links de um resultado local
type LocalLinks struct {
	Website string `json:"website"`
}

// LocalResult é um resultado de listagem local/mapa. Listagens locais nem
// sempre expõem o site: o título pode ser a única identidade disponível.
type LocalResult struct {
	Position int         `json:"position"`
	Website  string      `json:"website"`
	Links    *LocalLinks `json:"links"`
	Title    string      `json:"title"`
	Rating   *float64    `json:"rating"`
	Reviews  *int        `json:"reviews"`
}

// LocalPage é uma página de resultados locais (engine google_local). Quando o
// provedor omite local_results, ads_results é usado como fallback na montagem.
type LocalPage struct {
	Results []LocalResult
}

// SnippetLink é um link embutido em um bloco de texto da resposta de IA
type SnippetLink struct {
	Link string `json:"link"`
}

// TextBlock é um nó da árvore de blocos de texto do modo IA. List contém os
// blocos filhos (estrutura recursiva).
type TextBlock struct {
	Type         string        `json:"type"`
	Snippet      string        `json:"snippet"`
	List         []TextBlock   `json:"list"`
	SnippetLinks []SnippetLink `json:"snippet_links"`
}

// AIPage é a resposta do engine google_ai_mode
type AIPage struct {
	TextBlocks []TextBlock
}
