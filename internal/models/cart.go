package models

// CartItem garde un instantané du produit au moment de l'ajout : une modification
// ultérieure du prix en admin ne doit pas changer un panier déjà rempli.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Cart est une séquence ordonnée d'items, au plus un par produit.
type Cart []CartItem
