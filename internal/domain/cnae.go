package domain

// Cnae é um código de atividade econômica, com o item LC 116 e o anexo do
// Simples Nacional associados quando conhecidos.
type Cnae struct {
	ID    string  `json:"id"`
	Code  string  `json:"code"`
	Title string  `json:"title"`
	Lc116 *string `json:"lc116"`
	Group *int    `json:"group"`
}
