package translation

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/aws"
	awstranslate "github.com/aws/aws-sdk-go-v2/service/translate"

	"codeberg.org/snonux/imagelabel/internal"
)

type awsTranslateAPI interface {
	TranslateText(ctx context.Context, params *awstranslate.TranslateTextInput, optFns ...func(*awstranslate.Options)) (*awstranslate.TranslateTextOutput, error)
}

// AWSTranslator implements Translator using Amazon Translate
type AWSTranslator struct {
	client awsTranslateAPI
}

// NewAWSTranslator creates a translator from the default AWS credential chain
func NewAWSTranslator(ctx context.Context, config *Config) (*AWSTranslator, error) {
	cfg, err := internal.LoadAWSConfig(ctx, config.AWSRegion, config.AWSProfile)
	if err != nil {
		return nil, err
	}

	return &AWSTranslator{client: awstranslate.NewFromConfig(cfg)}, nil
}

// Translate calls TranslateText
func (a *AWSTranslator) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	out, err := a.client.TranslateText(ctx, &awstranslate.TranslateTextInput{
		Text:               aws.String(text),
		SourceLanguageCode: aws.String(sourceLang),
		TargetLanguageCode: aws.String(targetLang),
	})
	if err != nil {
		return "", &TranslationError{Provider: a.Name(), Message: "TranslateText failed", Err: err}
	}

	return aws.ToString(out.TranslatedText), nil
}

// Name returns the provider name
func (a *AWSTranslator) Name() string {
	return "aws"
}
