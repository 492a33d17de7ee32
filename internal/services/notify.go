package services

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"bazar_back_end/internal/models"

	"github.com/wneessen/go-mail"
)

// NotifyNewOrder envoie un e-mail au commerçant à chaque nouvelle commande.
// Best-effort : appelé en goroutine, un échec est simplement loggé, la commande
// est déjà persistée.
func NotifyNewOrder(order models.Order) {
	to := os.Getenv("SHOP_OWNER_EMAIL")
	if to == "" || os.Getenv("SMTP_HOST") == "" {
		return
	}

	msg := mail.NewMsg()
	if err := msg.From(fromAddress()); err != nil {
		log.Println("⚠️ Adresse expéditeur invalide:", err)
		return
	}
	if err := msg.To(to); err != nil {
		log.Println("⚠️ Adresse destinataire invalide:", err)
		return
	}
	msg.Subject(fmt.Sprintf("Nouvelle commande de %s — %.2f", order.CustomerName, order.Total))
	msg.SetBodyString(mail.TypeTextHTML, newOrderHTML(order))

	port := 587
	if p, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		port = p
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		log.Println("⚠️ Erreur création client SMTP:", err)
		return
	}

	log.Println("📤 Notification nouvelle commande envoyée à", to)
	if err := client.DialAndSend(msg); err != nil {
		log.Println("⚠️ Échec envoi e-mail commande:", err)
	}
}

func fromAddress() string {
	if from := os.Getenv("SMTP_FROM"); from != "" {
		return from
	}
	return "noreply@bazar.local"
}

// newOrderHTML génère le récapitulatif HTML de la commande pour le commerçant.
func newOrderHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td>%d</td>
				<td>%.2f</td>
				<td>%.2f</td>
			</tr>`, item.Product.Name, item.Quantity, item.Product.Price,
			item.Product.Price*float64(item.Quantity))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head><meta charset="UTF-8"><title>Nouvelle commande</title></head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Nouvelle commande #%s</h2>
		<p><b>Client :</b> %s<br><b>Téléphone :</b> %s<br><b>Adresse :</b> %s</p>
		<table width="100%%" cellpadding="6" style="border-collapse: collapse;">
			<tr style="background-color: #f0f0f0;">
				<th align="left">Produit</th><th align="left">Qté</th>
				<th align="left">Prix</th><th align="left">Sous-total</th>
			</tr>
			%s
		</table>
		<h3 style="text-align: right;">Total : %.2f</h3>
	</div>
</body>
</html>`, order.ID.String(), order.CustomerName, order.Phone, order.Address,
		itemsHTML, order.Total)
}
