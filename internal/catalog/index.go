package catalog

import "github.com/vk/regbuild/internal/model"

// Category labels used by the built-in index.
const (
	CategoryStock    = "股票数据"
	CategoryIndex    = "指数数据"
	CategoryFund     = "基金数据"
	CategoryFutures  = "期货数据"
	CategoryBond     = "债券数据"
	CategoryOption   = "期权数据"
	CategoryMacro    = "宏观经济"
	CategoryHongKong = "港股数据"
	CategoryUS       = "美股数据"
	CategoryOther    = "其他"
)

// builtin is never handed out directly; Builtin returns a copy.
var builtin = model.Index{Categories: []model.Category{
	{Name: CategoryStock, Identifiers: []string{
		// basics
		"stock_basic", "stock_company", "namechange", "stk_managers", "stk_rewards",
		"new_share", "share_float", "repurchase",
		// quotes
		"daily", "weekly", "monthly", "daily_basic", "adj_factor", "suspend",
		"suspend_d", "bak_daily", "stk_factor", "stk_factor_pro", "stk_limit",
		"stk_premarket", "stk_auction", "stk_auction_o", "stk_auction_c",
		"stk_mins", "rt_min", "realtime_quote", "realtime_list", "realtime_tick",
		// financials
		"income", "balancesheet", "cashflow", "fina_indicator", "fina_audit",
		"fina_mainbz", "disclosure_date", "express", "forecast", "dividend",
		"stk_holdernumber", "stk_holdertrade", "top10_holders", "top10_floatholders",
		"pledge_stat", "pledge_detail",
		// trading
		"margin", "margin_detail", "margin_secs", "stk_account", "stk_surv",
		"limit_list_d", "limit_list_ths", "limit_cpt_list", "limit_step",
		"stk_ah_comparison", "stk_nineturn", "stk_week_month_adj",
		// chip distribution
		"cyq_perf", "cyq_chips",
		// margin trading, listed again on purpose
		"margin",
	}},
	{Name: CategoryIndex, Identifiers: []string{
		"index_basic", "index_weight", "index_member_all", "index_classify",
		"index_global", "index_dailybasic",
		"index_daily", "index_weekly", "index_monthly",
		"sw_daily", "ths_daily", "dc_daily", "tdx_daily", "ci_daily",
	}},
	{Name: CategoryFund, Identifiers: []string{
		"fund_basic", "fund_company", "fund_manager", "fund_share",
		"fund_adj", "fund_daily",
		"fund_nav", "fund_div", "fund_portfolio", "fund_factor_pro",
		"fund_sales_vol", "fund_sales_ratio",
		"etf_basic", "etf_daily", "etf_share_size", "etf_index",
	}},
	{Name: CategoryFutures, Identifiers: []string{
		"fut_basic", "fut_mapping", "fut_settle",
		"fut_daily", "fut_weekly_detail", "fut_weekly_monthly", "ft_mins",
		"rt_fut_min", "fut_holding",
		"fut_wsr", "ft_limit",
	}},
	{Name: CategoryBond, Identifiers: []string{
		"cb_basic", "cb_daily", "cb_issue", "cb_rate", "cb_price_chg",
		"cb_share", "cb_call", "cb_factor_pro", "yc_cb",
		"bond_blk", "bond_blk_detail", "repo_daily",
	}},
	{Name: CategoryOption, Identifiers: []string{
		"opt_basic", "opt_daily", "opt_mins", "rt_idx_k",
	}},
	{Name: CategoryMacro, Identifiers: []string{
		"cn_gdp", "cn_m", "sf_month",
		"cpi", "ppi", "ppi_c",
		"shibor", "shibor_quote", "shibor_lpr", "libor", "hibor", "gz_index",
		"cn_pmi", "eco_cal", "npr",
	}},
	{Name: CategoryHongKong, Identifiers: []string{
		"hk_basic", "hk_tradecal",
		"hk_daily", "hk_daily_adj", "hk_adjfactor",
		"hk_income", "hk_balancesheet", "hk_cashflow", "hk_fina_indicator",
		"hk_hold",
	}},
	{Name: CategoryUS, Identifiers: []string{
		"us_basic", "us_tradecal",
		"us_daily", "us_daily_adj",
		"us_income", "us_balancesheet", "us_cashflow", "us_fina_indicator",
		"us_adjfactor",
	}},
	{Name: CategoryOther, Identifiers: []string{
		// dragon-tiger list; limit_* and the dividend group also appear under
		// stocks and resolve to the stock entry
		"top_list", "top_inst", "limit_list_d", "limit_list_ths", "limit_cpt_list",
		"dividend", "forecast", "express",
		"slb_len", "slb_sec", "slb_sec_detail",
		"news", "cctv_news", "major_news", "anns_d",
		"film_record", "teleplay_record", "bo_daily", "bo_weekly",
		"stock_hsgt", "hsgt_top", "ggt_daily", "ggt_monthly",
		"concept", "concept_detail", "ths_member", "dc_member", "tdx_member",
		"ci_index_member",
		"trade_cal", "fx_daily", "fx_obasic",
	}},
}}

// Builtin returns a fresh copy of the compiled-in index.
func Builtin() *model.Index {
	return builtin.Clone()
}
