package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/voltcheck/voltcheck/internal/calc"
)

// NewCmdCalc groups the offline calculators. None of them needs a server.
func NewCmdCalc() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Run a field-test calculation locally",
	}
	cmd.AddCommand(NewCmdCalcTemperature())
	cmd.AddCommand(NewCmdCalcCorrect())
	cmd.AddCommand(NewCmdCalcAbsorption())
	cmd.AddCommand(NewCmdCalcTurnsRatio())
	return cmd
}

type CalcTemperatureOptions struct {
	Fahrenheit float64
	Celsius    float64
	Humidity   float64
	Policy     string
	Output     string

	hasFahrenheit bool
	hasCelsius    bool
}

type temperatureResult struct {
	Policy           string  `json:"policy"`
	Fahrenheit       float64 `json:"fahrenheit"`
	Celsius          float64 `json:"celsius"`
	CorrectionFactor float64 `json:"correctionFactor"`
	Humidity         float64 `json:"humidity,omitempty"`
}

func NewCmdCalcTemperature() *cobra.Command {
	o := &CalcTemperatureOptions{Policy: string(calc.PolicyRounded)}
	cmd := &cobra.Command{
		Use:   "temperature (--fahrenheit F | --celsius C)",
		Short: "Convert a temperature and look up its correction factor",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o.hasFahrenheit = cmd.Flags().Changed("fahrenheit")
			o.hasCelsius = cmd.Flags().Changed("celsius")
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run(cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	o.Bind(cmd.Flags())
	return cmd
}

func (o *CalcTemperatureOptions) Bind(fs *pflag.FlagSet) {
	fs.Float64Var(&o.Fahrenheit, "fahrenheit", o.Fahrenheit, "Temperature in °F. Wins over --celsius.")
	fs.Float64Var(&o.Celsius, "celsius", o.Celsius, "Temperature in °C")
	fs.Float64Var(&o.Humidity, "humidity", o.Humidity, "Relative humidity in %")
	fs.StringVar(&o.Policy, "policy", o.Policy, "Correction factor policy. One of: (rounded, interpolated).")
	fs.StringVarP(&o.Output, "output", "o", o.Output, fmt.Sprintf("Output format. One of: (%s).", strings.Join(legalOutputTypes, ", ")))
}

func (o *CalcTemperatureOptions) Validate() error {
	if !o.hasFahrenheit && !o.hasCelsius {
		return fmt.Errorf("either --fahrenheit or --celsius is required")
	}
	if !calc.Policy(strings.ToLower(o.Policy)).IsValid() {
		return fmt.Errorf("policy must be one of rounded, interpolated")
	}
	return validateOutput(o.Output)
}

func (o *CalcTemperatureOptions) Run(w io.Writer) error {
	policy := calc.ParsePolicy(o.Policy)

	var reading calc.TemperatureReading
	if o.hasFahrenheit {
		reading = calc.NewReadingFromFahrenheit(o.Fahrenheit, o.Humidity, policy)
	} else {
		reading = calc.NewReadingFromCelsius(o.Celsius, o.Humidity, policy)
	}

	result := temperatureResult{
		Policy:           string(policy),
		Fahrenheit:       calc.RoundTo(reading.Fahrenheit, 1),
		Celsius:          reading.Celsius,
		CorrectionFactor: reading.CorrectionFactor,
		Humidity:         reading.Humidity,
	}
	if done, err := printStructured(w, o.Output, result); done {
		return err
	}
	fmt.Fprintf(w, "Fahrenheit: %s\n", calc.FormatFixed(result.Fahrenheit, 1))
	fmt.Fprintf(w, "Celsius:    %s\n", calc.FormatFixed(result.Celsius, 1))
	fmt.Fprintf(w, "TCF:        %s (%s)\n", calc.FormatFixed(result.CorrectionFactor, 3), result.Policy)
	return nil
}

func NewCmdCalcCorrect() *cobra.Command {
	var tcf float64
	cmd := &cobra.Command{
		Use:   "correct --tcf FACTOR READING...",
		Short: "Correct insulation readings to 20°C",
		Long:  "Correct insulation readings to 20°C. Readings that are blank or N/A are printed unchanged.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, reading := range args {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", reading, calc.CorrectReading(reading, tcf))
			}
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().Float64Var(&tcf, "tcf", 1, "Temperature correction factor")
	return cmd
}

func NewCmdCalcAbsorption() *cobra.Command {
	var half, one, ten string
	cmd := &cobra.Command{
		Use:   "absorption --half R30 --one R60 [--ten R600]",
		Short: "Compute the dielectric absorption ratio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ratio := calc.DielectricAbsorptionRatio(half, one)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "DAR:        %s\n", orDash(ratio))
			if ten != "" {
				fmt.Fprintf(w, "PI:         %s\n", orDash(calc.PolarizationIndex(one, ten)))
			}
			fmt.Fprintf(w, "Acceptable: %s\n", calc.AbsorptionAcceptable([]string{ratio}))
			return nil
		},
		SilenceUsage: true,
	}
	cmd.Flags().StringVar(&half, "half", "", "Reading at 30 seconds")
	cmd.Flags().StringVar(&one, "one", "", "Reading at 1 minute")
	cmd.Flags().StringVar(&ten, "ten", "", "Reading at 10 minutes")
	return cmd
}

type CalcTurnsRatioOptions struct {
	Primary             string
	Nameplate           string
	Secondary           string
	PrimaryConnection   string
	SecondaryConnection string
	Measured            []string
}

func NewCmdCalcTurnsRatio() *cobra.Command {
	o := &CalcTurnsRatioOptions{}
	cmd := &cobra.Command{
		Use:   "turns-ratio --primary V --secondary V --primary-connection C --secondary-connection C",
		Short: "Compute the expected turns ratio and check measured ratios against it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Validate(); err != nil {
				return err
			}
			return o.Run(cmd.OutOrStdout())
		},
		SilenceUsage: true,
	}
	fs := cmd.Flags()
	fs.StringVar(&o.Primary, "primary", "", "Primary tap voltage")
	fs.StringVar(&o.Nameplate, "nameplate", "", "Nameplate voltage for the tap, used unless the transformer is Delta-Wye. Defaults to --primary.")
	fs.StringVar(&o.Secondary, "secondary", "", "Secondary voltage")
	fs.StringVar(&o.PrimaryConnection, "primary-connection", "", "Primary connection. One of: (Delta, Wye, Single Phase).")
	fs.StringVar(&o.SecondaryConnection, "secondary-connection", "", "Secondary connection. One of: (Delta, Wye, Single Phase).")
	fs.StringSliceVar(&o.Measured, "measured", nil, "Measured ratios, one per phase")
	return cmd
}

func (o *CalcTurnsRatioOptions) Validate() error {
	for _, c := range []string{o.PrimaryConnection, o.SecondaryConnection} {
		if !calc.ParseConnection(c).IsValid() {
			return fmt.Errorf("invalid connection %q: must be Delta, Wye or Single Phase", c)
		}
	}
	return nil
}

func (o *CalcTurnsRatioOptions) Run(w io.Writer) error {
	nameplate := o.Nameplate
	if nameplate == "" {
		nameplate = o.Primary
	}
	ratio := calc.CalculatedTurnsRatio(o.Primary, nameplate, o.Secondary,
		calc.ParseConnection(o.PrimaryConnection), calc.ParseConnection(o.SecondaryConnection))
	fmt.Fprintf(w, "Calculated ratio: %s\n", orDash(ratio))

	for i, measured := range o.Measured {
		phase := fmt.Sprintf("#%d", i+1)
		if i < len(calc.PhasePairs) {
			phase = calc.PhasePairs[i]
		}
		d := calc.TurnsRatioDeviationAndResult(measured, ratio)
		fmt.Fprintf(w, "%s\t%s\t%s%%\t%s\n", phase, measured, orDash(d.Percent), orDash(string(d.Result)))
	}
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
