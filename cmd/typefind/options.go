package main

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"os"
	"slices"
	"strings"

	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/dhamidi/typefind/format"
	"github.com/dhamidi/typefind/java"
	"github.com/dhamidi/typefind/javastub"
	"github.com/dhamidi/typefind/maven"
	"github.com/dhamidi/typefind/pkgpattern"
	"github.com/dhamidi/typefind/typesig"
)

const classPathEnv = "TYPEFIND_CLASSPATH"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	err := v.RegisterValidation("coordinate", func(fl validator.FieldLevel) bool {
		_, err := maven.ParseCoordinate(fl.Field().String())
		return err == nil
	})
	if err != nil {
		panic(err)
	}
	return v
}

type globalOptions struct {
	Verbosity int `validate:"min=0,max=5"`
	NoColor   bool
}

// sourceOptions select the classes to describe and the packages to keep.
type sourceOptions struct {
	ClassPath []string `validate:"required_without_all=Stubs Maven,dive,required"`
	Stubs     []string `validate:"required_without_all=ClassPath Maven,dive,required"`
	Maven     []string `validate:"dive,coordinate"`
	Profile   string   `validate:"omitempty,oneof=compact1 compact2 compact3 full"`
	Packages  []string `validate:"dive,required"`
}

func (o *sourceOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&o.ClassPath, "classpath", java.SplitList(os.Getenv(classPathEnv)),
		"class path entries, directories or jars (also -cp, or $"+classPathEnv+")")
	cmd.Flags().StringSliceVar(&o.Stubs, "stub", nil, "stub files, or directories of "+javastub.Extension+" files, declaring classes without bodies")
	cmd.Flags().StringArrayVar(&o.Maven, "maven", nil, "describe the jar of a Maven artifact, groupId:artifactId[:classifier]:version")
	cmd.Flags().StringVar(&o.Profile, "profile", "", "only describe the public packages of a JDK profile: compact1, compact2, compact3 or full")
	cmd.Flags().StringSliceVarP(&o.Packages, "package", "p", nil, "only describe classes in these packages")
}

// pattern is nil when every package is allowed.
func (o *sourceOptions) pattern() (*pkgpattern.Pattern, error) {
	if len(o.Packages) > 0 {
		return pkgpattern.Compile(o.Packages)
	}
	if o.Profile != "" {
		return pkgpattern.JDK(pkgpattern.Profile(o.Profile))
	}
	return nil, nil
}

// classPath splits entries given as path lists, so that both
// "-cp a.jar:b.jar" and "-cp a.jar -cp b.jar" work.
func (o *sourceOptions) classPath() []string {
	var out []string
	for _, entry := range o.ClassPath {
		out = append(out, java.SplitList(entry)...)
	}
	return out
}

// watched lists the files a long running server should watch for changes.
// Maven artifacts are immutable and not watched.
func (o *sourceOptions) watched() []string {
	return append(o.classPath(), o.Stubs...)
}

// provider is a source of classes: a class path or a stub universe.
type provider interface {
	Classes(allow *pkgpattern.Pattern) iter.Seq2[typesig.Class, error]
	Lookup(name string) (typesig.Class, error)
	Close() error
}

func (o *sourceOptions) check() error {
	if err := validate.Struct(o); err != nil {
		return validationError(err)
	}
	return nil
}

func (o *sourceOptions) open(ctx context.Context) (provider, error) {
	entries := o.classPath()
	if len(o.Maven) > 0 {
		jars, err := o.fetch(ctx)
		if err != nil {
			return nil, err
		}
		entries = append(entries, jars...)
	}

	var providers providers
	if len(entries) > 0 {
		cp, err := java.NewClassPath(entries...)
		if err != nil {
			return nil, err
		}
		providers = append(providers, cp)
	}
	if len(o.Stubs) > 0 {
		u, err := javastub.Load(o.Stubs...)
		if err != nil {
			providers.Close()
			return nil, err
		}
		providers = append(providers, u)
	}
	if len(providers) == 1 {
		return providers[0], nil
	}
	return providers, nil
}

func (o *sourceOptions) fetch(ctx context.Context) ([]string, error) {
	cacheDir, err := maven.DefaultCacheDir()
	if err != nil {
		return nil, err
	}
	f := maven.NewFetcher(cacheDir)

	jars := make([]string, len(o.Maven))
	for i, coord := range o.Maven {
		c, err := maven.ParseCoordinate(coord)
		if err != nil {
			return nil, err
		}
		if jars[i], err = f.Jar(ctx, c); err != nil {
			return nil, fmt.Errorf("%s: %w", c, err)
		}
	}
	return jars, nil
}

// providers chains several providers. Lookups try them in order.
type providers []provider

func (ps providers) Classes(allow *pkgpattern.Pattern) iter.Seq2[typesig.Class, error] {
	return func(yield func(typesig.Class, error) bool) {
		for _, p := range ps {
			for c, err := range p.Classes(allow) {
				if !yield(c, err) {
					return
				}
			}
		}
	}
}

func (ps providers) Lookup(name string) (typesig.Class, error) {
	var errs []error
	for _, p := range ps {
		c, err := p.Lookup(name)
		if err == nil {
			return c, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Join(errs...)
}

func (ps providers) Close() error {
	var errs []error
	for _, p := range ps {
		errs = append(errs, p.Close())
	}
	return errors.Join(errs...)
}

type outputOptions struct {
	Format string `validate:"oneof=text json"`
}

func (o *outputOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&o.Format, "format", "f", "text", "output format: "+strings.Join(format.Names, " or "))
}

func (o *outputOptions) encoder(cmd *cobra.Command) (format.Encoder, error) {
	if err := validate.Struct(o); err != nil {
		return nil, validationError(err)
	}
	return format.New(o.Format, cmd.OutOrStdout())
}

// validationError rephrases validator errors in terms of flags.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	var msgs []string
	for _, fe := range verrs {
		if msg := flagMessage(fe); !slices.Contains(msgs, msg) {
			msgs = append(msgs, msg)
		}
	}
	return errors.New(strings.Join(msgs, "; "))
}

var flagNames = map[string]string{
	"ClassPath": "--classpath",
	"Stubs":     "--stub",
	"Maven":     "--maven",
	"Profile":   "--profile",
	"Packages":  "--package",
	"Format":    "--format",
	"Verbosity": "--verbose",
}

func flagMessage(fe validator.FieldError) string {
	field, _, _ := strings.Cut(fe.StructField(), "[")
	name := flagNames[field]
	if name == "" {
		name = fe.Field()
	}
	switch fe.Tag() {
	case "required_without_all":
		return "one of --classpath, --stub or --maven is required"
	case "coordinate":
		return fmt.Sprintf("%s %q is not a groupId:artifactId[:classifier]:version coordinate", name, fe.Value())
	case "required":
		return name + " must not be empty"
	case "oneof":
		return fmt.Sprintf("%s must be one of %s, not %q", name, strings.ReplaceAll(fe.Param(), " ", ", "), fe.Value())
	case "max":
		return fmt.Sprintf("%s may be given at most %s times", name, fe.Param())
	}
	return fmt.Sprintf("%s is invalid (%s)", name, fe.Tag())
}

// javaStyleArgs accepts the -cp and -classpath spellings of java(1).
func javaStyleArgs(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		switch {
		case arg == "-cp" || arg == "-classpath":
			out[i] = "--classpath"
		case strings.HasPrefix(arg, "-cp="):
			out[i] = "--classpath=" + strings.TrimPrefix(arg, "-cp=")
		default:
			out[i] = arg
		}
	}
	return out
}

func disableColor() {
	color.NoColor = true
}
