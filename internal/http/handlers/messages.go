package handlers

// messages holds the UI strings per supported locale. French is the
// reference wording.
var messages = map[string]map[string]string{
	"fr": {
		"title":          "Architecte de Prompt Image",
		"intro":          "Transforme une idée vague en une spécification JSON complète pour la génération d'images (Nano Banana, Midjourney, DALL-E, Stable Diffusion).",
		"intro_edit":     "La description générée peut ensuite être facilement modifiée pour correspondre précisément à vos besoins avant de l'utiliser dans votre outil de génération d'images préféré.",
		"label":          "Description de l'image",
		"placeholder":    "Ex: Une photo cyberpunk d'un chat qui mange des nouilles sous la pluie, ambiance néon...",
		"submit":         "Générer la description complète",
		"empty_warning":  "Merci d'écrire une description d'abord.",
		"success":        "Prompt structuré généré avec succès !",
		"parse_warning":  "La réponse du modèle n'était pas un JSON valide : un objet vide est affiché.",
		"refusal":        "La demande a été refusée par le modèle ; une alternative est proposée dans le champ intent.",
		"error":          "Une erreur est survenue : %s",
		"download_json":  "Télécharger le JSON",
		"download_yaml":  "Télécharger le YAML",
		"download_zip":   "Télécharger l'archive",
		"footer":         "Assistant de Prompt Engineering pour la génération visuelle.",
		"progress_label": "Construction de la scène et extrapolation des détails...",
	},
	"en": {
		"title":          "Image Prompt Architect",
		"intro":          "Turn a vague idea into a complete JSON specification for image generation (Nano Banana, Midjourney, DALL-E, Stable Diffusion).",
		"intro_edit":     "The generated description can then be edited to match your needs exactly before you use it in your favorite image generation tool.",
		"label":          "Image description",
		"placeholder":    "E.g. A cyberpunk photo of a cat eating noodles in the rain, neon mood...",
		"submit":         "Generate the full description",
		"empty_warning":  "Please write a description first.",
		"success":        "Structured prompt generated successfully!",
		"parse_warning":  "The model response was not valid JSON: an empty object is shown.",
		"refusal":        "The model declined the request; a safe alternative is suggested in the intent field.",
		"error":          "An error occurred: %s",
		"download_json":  "Download JSON",
		"download_yaml":  "Download YAML",
		"download_zip":   "Download archive",
		"footer":         "Prompt engineering assistant for visual generation.",
		"progress_label": "Building the scene and extrapolating details...",
	},
}

func messagesFor(locale string) map[string]string {
	if m, ok := messages[locale]; ok {
		return m
	}
	return messages["fr"]
}
