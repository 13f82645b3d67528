// Package reniec implementa el cliente de consulta de DNI contra
// apiperu.dev, con tabla local de respaldo. Contrato del cliente: nunca
// propaga un error remoto; devuelve un resultado tipado o una ausencia
// explícita (ErrNoEncontrado).
package reniec

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Teamwawa12/ProyectoBus/internal/application/dto"
	"github.com/Teamwawa12/ProyectoBus/pkg/config"
	"github.com/Teamwawa12/ProyectoBus/pkg/logger"
)

// Errores del cliente.
var (
	ErrDNIInvalido  = errors.New("dni debe tener 8 dígitos")
	ErrNoEncontrado = errors.New("dni no encontrado")
)

var dniPattern = regexp.MustCompile(`^\d{8}$`)

// tituloEspanol formatea nombres en mayúscula inicial ("MARIA ELENA" → "Maria Elena").
var tituloEspanol = cases.Title(language.LatinAmericanSpanish)

// Client consulta el registro remoto de identidad. La llamada está acotada
// por el timeout del http.Client; al vencer (o ante cualquier fallo remoto)
// se degrada a la tabla de respaldo.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *logger.Logger
}

// NewClient construye el cliente con la configuración de la app.
func NewClient(cfg config.ReniecConfig, log *logger.Logger) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
		log:        log,
	}
}

// respuesta remota de apiperu.dev.
type remoteResponse struct {
	Success bool       `json:"success"`
	Data    remoteData `json:"data"`
}

type remoteData struct {
	Numero          string `json:"numero"`
	Nombres         string `json:"nombres"`
	ApellidoPaterno string `json:"apellido_paterno"`
	ApellidoMaterno string `json:"apellido_materno"`
	FechaNacimiento string `json:"fecha_nacimiento"`
	Sexo            string `json:"sexo"`
	EstadoCivil     string `json:"estado_civil"`
	Ubigeo          string `json:"ubigeo"`
	Direccion       string `json:"direccion"`
}

// ConsultarDNI valida el formato, consulta el registro remoto y normaliza la
// respuesta. Ante fallo remoto, timeout o sin datos usa la tabla de
// respaldo; si tampoco está ahí devuelve ErrNoEncontrado.
func (c *Client) ConsultarDNI(ctx context.Context, dni string) (*dto.ReniecDataDTO, error) {
	if !dniPattern.MatchString(dni) {
		return nil, ErrDNIInvalido
	}

	data, err := c.consultarRemoto(ctx, dni)
	if err != nil {
		c.log.Warn().Err(err).Str("dni", dni).Msg("consulta RENIEC remota falló, usando respaldo")
		return c.respaldo(dni)
	}
	if data == nil {
		return c.respaldo(dni)
	}
	return data, nil
}

// consultarRemoto hace la llamada HTTP. Devuelve (nil, nil) cuando el
// remoto responde bien pero sin datos para el dni.
func (c *Client) consultarRemoto(ctx context.Context, dni string) (*dto.ReniecDataDTO, error) {
	url := fmt.Sprintf("%s/%s", c.baseURL, dni)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("llamada remota: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status remoto %d", resp.StatusCode)
	}

	var remote remoteResponse
	if err := json.NewDecoder(resp.Body).Decode(&remote); err != nil {
		return nil, fmt.Errorf("decodificar respuesta: %w", err)
	}
	if !remote.Success {
		return nil, nil
	}

	numero := remote.Data.Numero
	if numero == "" {
		numero = dni
	}

	out := &dto.ReniecDataDTO{
		DNI:             numero,
		Nombres:         remote.Data.Nombres,
		ApellidoPaterno: remote.Data.ApellidoPaterno,
		ApellidoMaterno: remote.Data.ApellidoMaterno,
		FechaNacimiento: remote.Data.FechaNacimiento,
		Sexo:            normalizarSexo(remote.Data.Sexo),
		Edad:            calcularEdad(remote.Data.FechaNacimiento, time.Now()),
		EstadoCivil:     remote.Data.EstadoCivil,
		Ubigeo:          remote.Data.Ubigeo,
		Direccion:       remote.Data.Direccion,
	}
	out.NombreCompleto = nombreCompleto(out)
	return out, nil
}

func (c *Client) respaldo(dni string) (*dto.ReniecDataDTO, error) {
	data, ok := tablaRespaldo[dni]
	if !ok {
		return nil, ErrNoEncontrado
	}
	out := data // copia
	out.Edad = calcularEdad(out.FechaNacimiento, time.Now())
	out.NombreCompleto = nombreCompleto(&out)
	return &out, nil
}

// normalizarSexo reduce las variantes textuales del registro a M/F.
// Ante un valor irreconocible se asume M, igual que el mapeo original.
func normalizarSexo(s string) string {
	v := strings.ToUpper(strings.TrimSpace(s))
	switch {
	case strings.Contains(v, "FEMENINO"), v == "F", strings.Contains(v, "MUJER"), v == "FEMALE":
		return "F"
	default:
		return "M"
	}
}

// calcularEdad deriva la edad en años cumplidos a la fecha de referencia.
// Devuelve 0 si la fecha de nacimiento falta o no parsea.
func calcularEdad(fechaNacimiento string, ahora time.Time) int {
	if fechaNacimiento == "" {
		return 0
	}
	nacimiento, err := time.Parse("2006-01-02", fechaNacimiento)
	if err != nil {
		return 0
	}
	edad := ahora.Year() - nacimiento.Year()
	cumple := time.Date(ahora.Year(), nacimiento.Month(), nacimiento.Day(), 0, 0, 0, 0, time.UTC)
	if ahora.Before(cumple) {
		edad--
	}
	if edad < 0 {
		return 0
	}
	return edad
}

// nombreCompleto arma "Nombres ApellidoPaterno ApellidoMaterno" en
// mayúscula inicial (el registro devuelve todo en mayúsculas).
func nombreCompleto(d *dto.ReniecDataDTO) string {
	partes := strings.Fields(fmt.Sprintf("%s %s %s", d.Nombres, d.ApellidoPaterno, d.ApellidoMaterno))
	return tituloEspanol.String(strings.ToLower(strings.Join(partes, " ")))
}
