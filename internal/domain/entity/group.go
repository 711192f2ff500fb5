package entity

// Group representa um balde de exibição de contas, derivado do campo `group`
// de cada conta. Grupos são reconstruídos a cada resolução; nunca são
// editados diretamente.
type Group struct {
	// Name é o nome do grupo conforme declarado no texto, ou "Default"
	// quando a conta não declara um grupo.
	Name string `json:"name"`

	// Accounts preserva a ordem de declaração das contas no texto fonte.
	// Um alias repetido produz duas entradas; a deduplicação é uma questão
	// de qualidade de dados, não do construtor de grupos.
	Accounts []*Account `json:"accounts"`
}
