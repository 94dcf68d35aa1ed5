/*
Copyright © 2026 Seednode <seednode@seedno.de>
*/

package truthordare

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
)

// Language selects which built-in bank text is used.
type Language string

const (
	English  Language = "English"
	Hinglish Language = "Hinglish"
)

var languages = []Language{English, Hinglish}

// ParseLanguage matches s against the known languages, ignoring case.
func ParseLanguage(s string) (Language, error) {
	for _, l := range languages {
		if strings.EqualFold(strings.TrimSpace(s), string(l)) {
			return l, nil
		}
	}

	return "", ErrUnknownLanguage
}

// Category is the content rating of the built-in prompts.
type Category string

const (
	Kids  Category = "Kids"
	Teen  Category = "Teen"
	Adult Category = "Adult"
)

var categories = []Category{Kids, Teen, Adult}

// ParseCategory matches s against the known categories, ignoring case.
func ParseCategory(s string) (Category, error) {
	for _, c := range categories {
		if strings.EqualFold(strings.TrimSpace(s), string(c)) {
			return c, nil
		}
	}

	return "", ErrUnknownCategory
}

// Kind is what a player asks for once the pointer stops on them.
type Kind string

const (
	Truth  Kind = "TRUTH"
	Dare   Kind = "DARE"
	Random Kind = "RANDOM"
)

// ParseKind accepts truth, dare or random in any case.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToUpper(strings.TrimSpace(s))) {
	case Truth:
		return Truth, nil
	case Dare:
		return Dare, nil
	case Random:
		return Random, nil
	}

	return "", ErrUnknownChoice
}

// Shown when a pool would otherwise be empty.
const (
	NoTruthsPrompt = "No truth questions available! Add some custom ones."
	NoDaresPrompt  = "No dare questions available! Add some custom ones."
)

// Bank is the built-in prompt list for one language and category.
type Bank struct {
	Truth []string `mapstructure:"truth"`
	Dare  []string `mapstructure:"dare"`
}

// Banks maps language and category to a Bank. It is read-only once built.
type Banks map[Language]map[Category]Bank

// Lookup returns the bank for lang and cat. Unknown languages fall back to
// English, and an unset category falls back to Teen.
func (b Banks) Lookup(lang Language, cat Category) Bank {
	if cat == "" {
		cat = Teen
	}

	byCategory, ok := b[lang]
	if !ok {
		byCategory = b[English]
	}

	return byCategory[cat]
}

func (b Banks) clone() Banks {
	out := make(Banks, len(b))
	for lang, byCategory := range b {
		out[lang] = make(map[Category]Bank, len(byCategory))
		for cat, bank := range byCategory {
			out[lang][cat] = Bank{
				Truth: slices.Clone(bank.Truth),
				Dare:  slices.Clone(bank.Dare),
			}
		}
	}

	return out
}

// DefaultBanks returns a fresh copy of the built-in prompt banks.
func DefaultBanks() Banks {
	return builtinBanks.clone()
}

// LoadBanks reads a bank file (any format viper understands) laid out as
// language -> category -> truth/dare lists, and layers it over base.
// A non-empty list in the file replaces the matching list in base.
func LoadBanks(path string, base Banks) (Banks, error) {
	v := viper.New()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read prompt banks %s: %w", path, err)
	}

	var raw map[string]map[string]Bank
	if err := v.Unmarshal(&raw); err != nil {
		return nil, fmt.Errorf("decode prompt banks %s: %w", path, err)
	}

	out := base.clone()

	for rawLang, byCategory := range raw {
		lang, err := ParseLanguage(rawLang)
		if err != nil {
			return nil, fmt.Errorf("prompt banks %s: %q: %w", path, rawLang, err)
		}

		if out[lang] == nil {
			out[lang] = make(map[Category]Bank)
		}

		for rawCat, bank := range byCategory {
			cat, err := ParseCategory(rawCat)
			if err != nil {
				return nil, fmt.Errorf("prompt banks %s: %q: %w", path, rawCat, err)
			}

			merged := out[lang][cat]
			if len(bank.Truth) > 0 {
				merged.Truth = slices.Clone(bank.Truth)
			}
			if len(bank.Dare) > 0 {
				merged.Dare = slices.Clone(bank.Dare)
			}
			out[lang][cat] = merged
		}
	}

	return out, nil
}

var builtinBanks = Banks{
	English: {
		Kids: {
			Truth: []string{
				"What is your favorite cartoon and why?",
				"Have you ever blamed a sibling for something you did?",
				"What is the silliest thing you have ever cried about?",
				"If you could be any animal, what would you be?",
				"What food do you secretly hate?",
				"Who is your best friend in this room?",
			},
			Dare: []string{
				"Hop on one foot for 20 seconds.",
				"Do your best chicken dance.",
				"Talk like a robot until your next turn.",
				"Make the funniest face you can and hold it for 10 seconds.",
				"Sing the alphabet backwards.",
				"Pretend to be a cat until someone laughs.",
			},
		},
		Teen: {
			Truth: []string{
				"Who was your first crush?",
				"What is the most embarrassing thing in your search history?",
				"Have you ever lied to get out of plans?",
				"What is one thing you would change about yourself?",
				"Which app do you spend the most time on?",
				"What is the worst gift you have ever received?",
			},
			Dare: []string{
				"Show the last photo in your camera roll.",
				"Let the group post a story on your account.",
				"Do 15 push-ups.",
				"Speak in an accent until your next turn.",
				"Send a compliment to the third person in your contacts.",
				"Dance with no music for 30 seconds.",
			},
		},
		Adult: {
			Truth: []string{
				"What is the most reckless thing you have done on a night out?",
				"What is your biggest turn-off?",
				"Have you ever had a crush on a friend's partner?",
				"What is the worst date you have been on?",
				"What secret have you never told your parents?",
				"What is your most unpopular opinion about relationships?",
			},
			Dare: []string{
				"Read your last sent text out loud.",
				"Let someone else write your next social media post.",
				"Call someone and sing them happy birthday.",
				"Give a dramatic reading of your most recent message thread.",
				"Swap an item of clothing with the player to your left.",
				"Do your best impression of another player until your next turn.",
			},
		},
	},
	Hinglish: {
		Kids: {
			Truth: []string{
				"Tumhara favourite cartoon kaunsa hai aur kyun?",
				"Kabhi apni galti bhai ya behen pe daali hai?",
				"Agar tum koi janwar ban sakte, toh kaunsa banoge?",
				"Kaunsa khana tumhe secretly bilkul pasand nahi?",
			},
			Dare: []string{
				"20 second tak ek pair pe kood ke dikhao.",
				"Apna best chicken dance karo.",
				"Agle turn tak robot ki tarah baat karo.",
				"Sabse funny face banao aur 10 second hold karo.",
			},
		},
		Teen: {
			Truth: []string{
				"Tumhara pehla crush kaun tha?",
				"Kabhi plan cancel karne ke liye jhooth bola hai?",
				"Phone pe sabse zyada time kis app pe jaata hai?",
				"Sabse bekaar gift kaunsa mila hai?",
			},
			Dare: []string{
				"Camera roll ki last photo sabko dikhao.",
				"15 push-ups karo.",
				"Agle turn tak kisi accent mein baat karo.",
				"Bina music ke 30 second dance karo.",
			},
		},
		Adult: {
			Truth: []string{
				"Party mein tumne sabse risky kaam kya kiya hai?",
				"Tumhari sabse buri date kaisi thi?",
				"Kaunsa secret tumne apne parents ko kabhi nahi bataya?",
				"Relationships ke baare mein tumhari sabse unpopular opinion kya hai?",
			},
			Dare: []string{
				"Apna last sent text zor se padho.",
				"Kisi ko call karke happy birthday gao.",
				"Apne left wale player ke saath koi kapda exchange karo.",
				"Agle turn tak kisi player ki nakal karo.",
			},
		},
	},
}
