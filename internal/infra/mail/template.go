package mail

import (
	"bytes"
	"fmt"
	"net/url"
	"text/template"
)

const followUpSubject = "🤔 ¿Olvidaste registrar tu IMEI? Aún estás a tiempo"

// Misma estructura que la plantilla de React Email del sitio.
const followUpBody = `
            <p>Hola,</p>
            <p>Notamos que hace un tiempo verificaste el IMEI <strong>{{.IMEI}}</strong> en nuestro sitio y descubriste que necesita ser registrado para operar en Chile.</p>
            <p>¿Tuviste algún problema? No dejes que tu equipo sea bloqueado. El proceso es rápido y garantizado.</p>
            <p><strong><a href="{{.RegistrationURL}}">Haz clic aquí para completar tu registro ahora</a></strong></p>
            <p>Si ya lo registraste, por favor ignora este mensaje.</p>
            <p>Saludos,<br>El equipo de Registro IMEI Multibanda</p>
        `

var followUpTemplate = template.Must(template.New("followup").Parse(followUpBody))

// RegistrationURL arma el deep link de vuelta al flujo de registro.
// imei y email van percent-encoded; la interpolación cruda del script
// original era un bug latente con emails que llevan "+".
func RegistrationURL(siteURL, imei, email string) string {
	q := url.Values{}
	q.Set("imei", imei)
	q.Set("email", email)
	return fmt.Sprintf("%s/registro-dispositivo?%s", siteURL, q.Encode())
}

func renderFollowUp(siteURL, imei, email string) (string, error) {
	data := FollowUpEmailData{
		IMEI:            imei,
		RegistrationURL: RegistrationURL(siteURL, imei, email),
	}

	var body bytes.Buffer
	if err := followUpTemplate.Execute(&body, data); err != nil {
		return "", fmt.Errorf("error al procesar plantilla: %w", err)
	}

	return body.String(), nil
}
