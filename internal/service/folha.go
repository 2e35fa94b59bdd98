package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RegistroFolha é o payload aceito pelo serviço de cálculo de folha
// (hora_saida nula na entrada, preenchida na saída).
type RegistroFolha struct {
	FuncionarioID uint    `json:"funcionario_id"`
	UnidadeID     uint    `json:"unidade_id"`
	Data          string  `json:"data"`
	HoraEntrada   string  `json:"hora_entrada"`
	HoraSaida     *string `json:"hora_saida"`
	IDBiometrico  string  `json:"id_biometrico"`
}

// FolhaClient fala com o serviço de cálculo de folha. Quando
// configurado, a gravação de entrada/saída é delegada a ele em vez do
// banco local. Se a chamada falha, a operação inteira falha, porque a
// gravação não aconteceu.
type FolhaClient struct {
	URL  string
	HTTP *http.Client
}

func NovoFolhaClient(url string) *FolhaClient {
	return &FolhaClient{
		URL:  url,
		HTTP: &http.Client{Timeout: 10 * time.Second},
	}
}

// EnviarRegistro faz o POST do par entrada/saída. Resposta não-2xx
// vira ErroFolha carregando o corpo original para repasse ao terminal.
func (c *FolhaClient) EnviarRegistro(reg RegistroFolha) error {
	payload, err := json.Marshal(reg)
	if err != nil {
		return fmt.Errorf("falha ao montar payload da folha: %w", err)
	}

	resp, err := c.HTTP.Post(c.URL, "application/json", bytes.NewReader(payload))
	if err != nil {
		return &ErroFolha{Status: http.StatusInternalServerError}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	corpo, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	return &ErroFolha{Status: resp.StatusCode, Corpo: string(bytes.TrimSpace(corpo))}
}
