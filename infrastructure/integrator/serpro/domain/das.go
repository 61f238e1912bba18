package serprodomain

// Session é a credencial efêmera devolvida pelo endpoint de autenticação do
// SERPRO. Vive só na memória do processo e é reconstruída a cada
// (re)autenticação.
type Session struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	JwtToken    string `json:"jwt_token"`
	JwtPucomex  string `json:"jwt_pucomex"`
	ExpiresIn   int64  `json:"expires_in"`
	Scope       string `json:"scope"`
}

// Identification é o bloco {numero, tipo} usado para contratante, autor do
// pedido e contribuinte no envelope do Integra Contador. Tipo 2 é pessoa
// jurídica (CNPJ).
type Identification struct {
	Numero string `json:"numero"`
	Tipo   int    `json:"tipo"`
}

// ServiceRequest seleciona o serviço do gateway; Dados carrega o payload
// interno serializado como string JSON (dupla codificação exigida pela API).
type ServiceRequest struct {
	IDSistema     string `json:"idSistema"`
	IDServico     string `json:"idServico"`
	VersaoSistema string `json:"versaoSistema"`
	Dados         string `json:"dados"`
}

// GenerateDasRequest é o envelope do POST /Emitir.
type GenerateDasRequest struct {
	Contratante      Identification `json:"contratante"`
	AutorPedidoDados Identification `json:"autorPedidoDados"`
	Contribuinte     Identification `json:"contribuinte"`
	PedidoDados      ServiceRequest `json:"pedidoDados"`
}

// GenerateDasResponse é a resposta externa do gateway. Dados é uma string
// JSON que precisa de um segundo decode para obter o documento.
type GenerateDasResponse struct {
	Contratante      Identification `json:"contratante"`
	AutorPedidoDados Identification `json:"autorPedidoDados"`
	Contribuinte     Identification `json:"contribuinte"`
	PedidoDados      ServiceRequest `json:"pedidoDados"`
	Status           int            `json:"status"`
	ResponseID       string         `json:"responseId"`
	Dados            string         `json:"dados"`
	Mensagens        any            `json:"mensagens"`
}

// DasValues é a decomposição de um valor devido em principal, multa e juros.
type DasValues struct {
	Principal float64 `json:"principal"`
	Multa     float64 `json:"multa"`
	Juros     float64 `json:"juros"`
	Total     float64 `json:"total"`
}

// DasComposition detalha o valor devido por tributo e período de apuração.
type DasComposition struct {
	PeriodoApuracao string    `json:"periodoApuracao"`
	Codigo          string    `json:"codigo"`
	Denominacao     string    `json:"denominacao"`
	Valores         DasValues `json:"valores"`
}

// DasDetails é o detalhamento do documento de arrecadação gerado.
type DasDetails struct {
	PeriodoApuracao       string           `json:"periodoApuracao"`
	NumeroDocumento       string           `json:"numeroDocumento"`
	DataVencimento        string           `json:"dataVencimento"`
	DataLimiteAcolhimento string           `json:"dataLimiteAcolhimento"`
	Valores               DasValues        `json:"valores"`
	Observacao1           string           `json:"observacao1"`
	Observacao2           string           `json:"observacao2,omitempty"`
	Observacao3           string           `json:"observacao3,omitempty"`
	Composicao            []DasComposition `json:"composicao"`
}

// DasDocumentPayload é um elemento do payload interno de Dados.
type DasDocumentPayload struct {
	Pdf             string     `json:"pdf"`
	CnpjCompleto    string     `json:"cnpjCompleto"`
	DetalhamentoDas DasDetails `json:"detalhamentoDas"`
}

// Das é o documento de arrecadação pronto para o chamador: o PDF em base64
// e seu detalhamento.
type Das struct {
	PdfInBase64 string     `json:"pdfInBase64"`
	Details     DasDetails `json:"details"`
}
